package entities

// LoyaltyLevel is the courier's tier in the rewards program.
type LoyaltyLevel string

const (
	LoyaltyBronze LoyaltyLevel = "bronze"
	LoyaltySilver LoyaltyLevel = "silver"
	LoyaltyGold   LoyaltyLevel = "gold"
)

// SilverThreshold is the point balance that promotes a bronze courier.
const SilverThreshold = 1500

// Vehicle options offered at registration.
const (
	VehicleMoto      = "moto"
	VehicleBicicleta = "bicicleta"
	VehicleCarro     = "carro"
	VehiclePe        = "pe"
)

// User is the courier profile attached to a session. Point and credit
// balances live on the Session, not here, so there is a single mutable copy.
type User struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Vehicle     string       `json:"vehicle"`
	CPF         string       `json:"cpf,omitempty"`
	BirthDate   string       `json:"birth_date,omitempty"`
	MemberSince string       `json:"member_since"`
	Level       LoyaltyLevel `json:"level"`
}

// Registration carries the full field set the authentication collaborator
// consumes. The contract must stay stable so a real provider can replace the
// mock without reshaping callers.
type Registration struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Vehicle   string
	CPF       string
	BirthDate string
}

// LevelProgress derives the next tier and the points still missing. It is a
// pure function of the balance and is never stored.
func LevelProgress(points int) (next LoyaltyLevel, remaining int) {
	remaining = SilverThreshold - points
	if remaining < 0 {
		remaining = 0
	}
	return LoyaltySilver, remaining
}
