// Package export writes Lychrel search results as plain-text artefacts and
// reads thread files back.
//
// Formats:
//
//	Thread file (WriteThreads / ReadThreads):
//	  # MAX_ITER_DEPTH = 300
//	  [ THREAD ]
//	  4
//	  8
//	  # Lychrel = NO
//	  # nb_iter = 2
//	  <blank line>
//
//	  Each block lists the seed and then every reverse-add value. nb_iter
//	  counts the listed lines including the seed, or reads MAX_ITER when the
//	  depth bound was exhausted (Lychrel = YES).
//
//	Candidate list (WriteCandidates):
//	  *** Lychrel candidates in base: 10
//	  *** Number of candidates: 2
//	  196,295
//	  <blank line>
//
//	Density CSV (WriteDensityCSV):
//	  Base,Number of Lychrel candidates
//	  10,13
//
// Lines starting with '#' and blank lines are ignored by ReadThreads.
package export
