// Package builtin registers the built-in geoms by importing their
// packages for side effects. Entry points blank-import this package once
// instead of listing every geom.
package builtin

import (
	_ "github.com/plotforge/plotforge/internal/geoms/bar"
	_ "github.com/plotforge/plotforge/internal/geoms/line"
	_ "github.com/plotforge/plotforge/internal/geoms/scatter"
	_ "github.com/plotforge/plotforge/internal/geoms/waterfall"
)
