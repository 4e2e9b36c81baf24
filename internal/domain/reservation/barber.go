package reservation

// Barbers is the closed set of bookable staff. Barbers have no lifecycle of
// their own here; the name doubles as the identifier.
var Barbers = []string{"John", "Mike", "Alex"}

func IsBarber(name string) bool {
	for _, b := range Barbers {
		if b == name {
			return true
		}
	}
	return false
}
