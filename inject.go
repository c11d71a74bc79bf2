package parallax

// InjectKeydown queues a synthetic key press. Queued keys are dispatched at
// the start of the next Render, before keys read from the input channel.
func (s *Scene) InjectKeydown(key Key) {
	s.injectQueue = append(s.injectQueue, key)
}

// InjectKeys queues several key presses, all dispatched on the next tick in
// the given order.
func (s *Scene) InjectKeys(keys ...Key) {
	s.injectQueue = append(s.injectQueue, keys...)
}
