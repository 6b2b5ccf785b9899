package event

import (
	"strings"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryInit = false
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return 0, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == 0 {
		return "Tick"
	}
	return typeToName[et]
}

// InitRegistry populates the registry with all cosmos events
// Safe to call more than once
func InitRegistry() {
	if registryInit {
		return
	}
	registryInit = true

	RegisterType("EventTravel", EventTravel)
	RegisterType("EventAutopilotEnable", EventAutopilotEnable)
	RegisterType("EventAutopilotDisable", EventAutopilotDisable)
}
