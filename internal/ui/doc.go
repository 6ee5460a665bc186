package ui

// Package ui contains the Fyne widgets of the swipe actions engine: the
// actions view that lays out and animates action buttons behind a cell, the
// per-action wrapper and generated button, the default palette, and a small
// demo host (SwipeRow, DemoUI) that drives the view from drag gestures.
