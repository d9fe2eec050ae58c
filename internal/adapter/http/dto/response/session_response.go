package response

import (
	"delivery_hub/internal/domain/entities"
)

type UserResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Vehicle     string `json:"vehicle"`
	CPF         string `json:"cpf,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
	MemberSince string `json:"member_since"`
	Level       string `json:"level"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Vehicle:     u.Vehicle,
		CPF:         u.CPF,
		BirthDate:   u.BirthDate,
		MemberSince: u.MemberSince,
		Level:       string(u.Level),
	}
}

// SessionResponse is returned by login and register. The token is the only
// credential the client holds; everything else is a snapshot of the fresh
// session.
type SessionResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Points  int          `json:"points"`
	Credits int          `json:"credits"`
	Message string       `json:"message"`
}

func FromSession(s entities.Session, token, message string) SessionResponse {
	return SessionResponse{
		Token:   token,
		User:    FromUser(*s.User),
		Points:  s.Points,
		Credits: s.Credits,
		Message: message,
	}
}

// ProfileResponse is the profile tab aggregate: user data, balances, level
// progress and the delivery statistics block.
type ProfileResponse struct {
	User              UserResponse           `json:"user"`
	Points            int                    `json:"points"`
	Credits           int                    `json:"credits"`
	NextLevel         string                 `json:"next_level"`
	PointsToNextLevel int                    `json:"points_to_next_level"`
	Stats             entities.DeliveryStats `json:"stats"`
}

func FromProfile(s entities.Session) ProfileResponse {
	next, remaining := entities.LevelProgress(s.Points)
	return ProfileResponse{
		User:              FromUser(*s.User),
		Points:            s.Points,
		Credits:           s.Credits,
		NextLevel:         string(next),
		PointsToNextLevel: remaining,
		Stats:             s.Stats,
	}
}

type WeatherResponse struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	FeelsLike   int    `json:"feels_like"`
}

func FromWeather(w entities.Weather) WeatherResponse {
	return WeatherResponse{
		Temperature: w.Temperature,
		Condition:   w.Condition,
		Humidity:    w.Humidity,
		WindSpeed:   w.WindSpeed,
		FeelsLike:   w.FeelsLike,
	}
}

// MessageResponse carries the toast shown after a mutation with no richer
// payload.
type MessageResponse struct {
	Message string `json:"message"`
}
