// Package service contains the application's orchestration layer: task and
// task list lifecycle operations built on the store interfaces, with
// derived views (completeness percentage, filtered task subsets) and the
// reassignment notification side effect.
package service
