// Package events provides types and interfaces for in-process event
// dispatch.
//
// Services emit events without knowing which handlers will process them,
// keeping side effects like the reassignment notification out of the
// service layer. Delivery is synchronous and best-effort: a failing handler
// is logged and never retried, and the emitting operation is not rolled
// back.
//
// The primary components are:
// - Event: a typed, JSON-payloaded notification
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
