// Package country holds the reference data used to canonicalize free-text
// destination names: the folding rule applied before every comparison and
// the alias table that maps alternate spellings to a canonical name.
//
// A canonical name is always in folded form: upper case, accents stripped,
// dots removed and inner whitespace collapsed ("Côte d'Ivoire" becomes
// "COTE D'IVOIRE", "U.S.A." becomes "USA").
package country
