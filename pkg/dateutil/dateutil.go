package dateutil

import (
	"time"
)

// DaysPerYear is the mean Gregorian year length used for fractional-year math.
const DaysPerYear = 365.25

// Age calculates the age at a given date.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearAtAge returns the calendar year in which someone born in birthYear
// turns the given age.
func YearAtAge(birthYear, age int) int {
	return birthYear + age
}
