// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package strnat implements natural-order string comparison: operands are
// case-folded and stripped of Latin diacritics before being ordered by the
// Unicode Collation Algorithm. It also provides the small string helpers
// (case conversion, padding, capitalization, parsing) that tend to
// accumulate around such a comparator.
//
// The diacritic fold table covers the a/c/e/i/n/o/u letter families of
// Latin-1 Supplement and Latin Extended-A plus the non-decomposing forms
// Æ, Ø, and Œ; see tables.go. Collation is fixed: [golang.org/x/text/collate]
// with the root collation (language.Und) and numeric ordering, so embedded
// numbers compare by value. Exact tie-break behavior follows DUCET, not any
// platform-native collator.
package strnat
