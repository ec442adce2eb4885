/*Package interval holds the coordinate arithmetic used to compare genomic
  features: closed-interval overlap tests and the percent-overlap quality
  score, endpoint distance tests, region-string parsing, and ProximityIndex
  for "which features lie near this region" lookups.

  All coordinates are 1-based and inclusive unless stated otherwise.
*/
package interval
