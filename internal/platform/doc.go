package platform

// Package platform adapts the host platform for the actions view: haptic
// feedback, safe-area margins, and the UI task queue used to defer
// notifications to the next turn of the event loop.
