/*Package match compares two collections of genomic features and classifies
  every record as matched across the collections or unique to one of them.

  A comparison groups both collections by normalized sequence name, then, for
  each left-hand record in input order, scans the right-hand records of the
  same group in input order and pairs it with the first unconsumed record
  accepted by the configured Predicate.  Each right-hand record is paired at
  most once.  The result is fully determined by the input order; no sorting
  or randomization is involved.

  Four predicates are available (see Strategy): endpoint tolerance, boolean
  overlap, length-scaled ("fuzzy") overlap, and proximity window.  Pairs found
  with the two overlap strategies carry a percent-overlap score.
*/
package match
