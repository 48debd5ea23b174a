package main

import (
	_ "github.com/eleven-am/metric-frames/docs"
	"github.com/eleven-am/metric-frames/internal/bootstrap"
)

// @title Metric Frames API
// @version 1.0.0
// @description Renders RevenueCat project metrics as display frames

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description RevenueCat secret API key, sent as Bearer <key>

func main() {
	bootstrap.Run()
}
