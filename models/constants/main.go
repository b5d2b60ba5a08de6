package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the variant catalog and
	it's associated services.
*/
type StyleTag string
type OutcomeKind string
type LoadState string
type DatasetSource string
type SortDirection string
