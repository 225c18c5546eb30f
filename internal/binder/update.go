package binder

// Update invokes the callbacks of actions whose keys were pressed or released
// this frame. It must be called once per frame. Callbacks run synchronously,
// in action name order, and a panicking callback is not recovered.
//
// A callback may add or remove actions: removed actions that have yet to be
// visited are skipped, and added actions are first visited next frame.
func (r *Registry) Update(in Input) {
	for _, name := range r.names() {
		e, ok := r.actions[name]
		if !ok {
			continue
		}
		// Take a copy: a callback may replace the entry.
		action := e.Action
		if action.OnPress != nil && in.IsKeyPressed(action.Key, action.RepeatOnHold) {
			action.OnPress()
		}
		if action.OnRelease != nil && in.IsKeyReleased(action.Key) {
			action.OnRelease()
		}
	}
}
