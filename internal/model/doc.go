package model

// Package model defines the data structures shared by the swipe action
// engine: actions, their display styles, orientation, layout options and
// expansion styles. Values here are plain data; the layout and animation
// behaviour lives in the transition, expansion and ui packages.
