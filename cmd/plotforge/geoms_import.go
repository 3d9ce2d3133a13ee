package main

import (
	// Register the built-in geoms.
	_ "github.com/plotforge/plotforge/internal/geoms/builtin"
)
