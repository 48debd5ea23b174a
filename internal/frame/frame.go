// Package frame builds the display frames rendered by the metrics panel.
package frame

import (
	"encoding/json"
	"errors"
)

const (
	DefaultIcon = "i2381"
	ErrorIcon   = "i18445"
)

// GoalData describes progress from Start toward End.
type GoalData struct {
	Start   float64 `json:"start"`
	Current float64 `json:"current"`
	End     float64 `json:"end"`
	Unit    string  `json:"unit"`
}

// Frame is either a text frame or a goal frame. Goal is set only on goal
// frames; Text is ignored for them.
type Frame struct {
	Text string
	Icon string
	Goal *GoalData
}

type textFrame struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type goalFrame struct {
	Icon     string   `json:"icon"`
	GoalData GoalData `json:"goalData"`
}

func NewText(text, icon string) Frame {
	return Frame{Text: text, Icon: icon}
}

func NewGoal(icon string, goal GoalData) Frame {
	return Frame{Icon: icon, Goal: &goal}
}

func (f Frame) IsGoal() bool {
	return f.Goal != nil
}

func (f Frame) MarshalJSON() ([]byte, error) {
	if f.Goal != nil {
		return json.Marshal(goalFrame{Icon: f.Icon, GoalData: *f.Goal})
	}
	return json.Marshal(textFrame{Text: f.Text, Icon: f.Icon})
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text     *string   `json:"text"`
		Icon     string    `json:"icon"`
		GoalData *GoalData `json:"goalData"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.GoalData != nil:
		*f = NewGoal(raw.Icon, *raw.GoalData)
	case raw.Text != nil:
		*f = NewText(*raw.Text, raw.Icon)
	default:
		return errors.New("frame has neither text nor goalData")
	}
	return nil
}

// Response is the success body of the metrics endpoint.
type Response struct {
	Frames []Frame `json:"frames"`
}

// ErrorResponse keeps the frame shape so the panel can display failures.
type ErrorResponse struct {
	Frames []Frame `json:"frames"`
	Error  string  `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Frames: []Frame{NewText("Error: "+message, ErrorIcon)},
		Error:  message,
	}
}
