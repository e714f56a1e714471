// Package resolve turns the entity links of summary rows into fragments,
// the identifiers needed to address detail pages.
//
// Archive links have a fixed shape, for example
//
//	/en/results.html/1950/races/100/italy/race-result.html
//	/en/results.html/1950/drivers/NINFAR01/nino-farina.html
//	/en/results.html/1950/team/alfa_romeo_ferrari.html
//
// The identifiers always start at the sixth slash separated segment of the
// path. Display names are never derived from the link; callers pass the
// row's visible label.
package resolve
