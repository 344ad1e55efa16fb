package solarsystem

import "github.com/EngoEngine/engo"

type HoverEnterMessage struct {
	BodyID string
}

func (HoverEnterMessage) Type() string {
	return "HoverEnterMessage"
}

type HoverLeaveMessage struct {
	BodyID string
}

func (HoverLeaveMessage) Type() string {
	return "HoverLeaveMessage"
}

type SelectMessage struct {
	BodyID string
}

func (SelectMessage) Type() string {
	return "SelectMessage"
}

type UnselectMessage struct {
	BodyID string
}

func (UnselectMessage) Type() string {
	return "UnselectMessage"
}

// ConfigAppliedMessage is dispatched on the frame loop after a config reload took effect.
type ConfigAppliedMessage struct {
	Config Config
}

func (ConfigAppliedMessage) Type() string {
	return "ConfigAppliedMessage"
}

var (
	_ engo.Message = HoverEnterMessage{}
	_ engo.Message = HoverLeaveMessage{}
	_ engo.Message = SelectMessage{}
	_ engo.Message = UnselectMessage{}
	_ engo.Message = ConfigAppliedMessage{}
)
