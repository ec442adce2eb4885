/*Package feature defines the normalized record shared by every feature-set
  comparison: a named sequence, a 1-based closed [Start, End] interval, an
  optional strand, and opaque reporting fields.  It also partitions record
  collections by sequence, treating identifiers that differ only in their
  version suffix ("DS571145.1" vs "DS571145.2") as the same sequence.
*/
package feature
