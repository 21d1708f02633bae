/*
go-ssdanchors computes the default box ("anchor") geometry used by single
shot multibox detectors, along with the ground truth matching and regression
target encoding needed to prepare training data for them.

Anchors are generated once per preset and treated as read only afterwards.
Their position in the generated sequence is the stable handle the rest of a
training pipeline uses to refer to them, so the generation order never
changes between runs.

See example code and usage in the example subdirectory.
*/
package ssdanchors
