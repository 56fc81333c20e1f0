// Package boxplot provides a box-and-whisker chart primitive for
// scene-graph style plotting surfaces.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// An Item summarises one or more numeric samples into quartile statistics,
// whisker extents and outliers, records the resulting geometry once into a
// replayable picture and keeps track of a precise bounding region the host
// can use for layout and hit testing.
//
// Coordinates and Pens
//
// All geometry is recorded in data coordinates; the host applies the affine
// transform mapping data to device space before replaying the picture.
// Strokes come in two flavours: cosmetic pens have their width expressed in
// device pixels and do not scale with the view transform, geometric pens
// scale with the data. A cosmetic pen contributes to the bounding region
// as a device pixel scalar which is resolved against the current
// pixel-to-data scale only when the bounds are queried; a geometric pen
// widens the bounding region directly in data units. Outlier markers have
// a constant device pixel size and are treated like cosmetic pens.
//
// Caching
//
// The picture and both bounds accumulators are rebuilt together, lazily,
// on the first Paint or BoundingRect after a mutation. SetData and
// SetWhiskerFunc invalidate the cache; bounds returned before a mutation
// must not be retained across it.
package boxplot
