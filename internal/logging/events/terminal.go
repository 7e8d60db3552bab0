package events

import "github.com/atomicstack/todoodler/internal/logging"

type TerminalTracer struct{}

var Terminal = TerminalTracer{}

func (TerminalTracer) Acquire(step string, err error) {
	logging.Trace("terminal.acquire", stepPayload(step, err))
}

func (TerminalTracer) Release(step string, err error) {
	logging.Trace("terminal.release", stepPayload(step, err))
}

func stepPayload(step string, err error) map[string]interface{} {
	payload := map[string]interface{}{"step": step}
	if err != nil {
		payload["error"] = err.Error()
	}
	return payload
}
