package events

import "github.com/atomicstack/todoodler/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Popup(shown bool) {
	logging.Trace("ui.popup", map[string]interface{}{"shown": shown})
}

func (UITracer) Quit(shown bool) {
	logging.Trace("ui.quit", map[string]interface{}{"shown": shown})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
