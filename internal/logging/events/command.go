package events

import "github.com/atomicstack/kls/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Run(key, command string) {
	logging.Trace("command.run", map[string]interface{}{"key": key, "command": command})
}

func (CommandTracer) Done(key string, err error) {
	payload := map[string]interface{}{"key": key}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.done", payload)
}

func (CommandTracer) ContextSwitch(name string) {
	logging.Trace("command.context", map[string]interface{}{"context": name})
}
