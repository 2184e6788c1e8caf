//go:build release

package drawarrays

const defaultValidation = Elided
