package request_models

type RegisterMemberRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
	FitnessGoals string `json:"fitness_goals"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MemberField is the closed set of updatable profile fields. Anything outside
// this set is rejected with ErrUnknownField before touching the store.
type MemberField string

const (
	FieldFirstName   MemberField = "first_name"
	FieldLastName    MemberField = "last_name"
	FieldEmail       MemberField = "email"
	FieldPassword    MemberField = "password"
	FieldDateOfBirth MemberField = "date_of_birth"
	FieldGender      MemberField = "gender"
)

type UpdatePersonalInfoRequest struct {
	Field MemberField `json:"field" binding:"required"`
	Value string      `json:"value" binding:"required"`
}

type UpdateFitnessGoalsRequest struct {
	FitnessGoals string `json:"fitness_goals" binding:"required"`
}

type AddHealthMetricRequest struct {
	Weight  float64 `json:"weight" binding:"required"`
	Height  float64 `json:"height" binding:"required"`
	Bodyfat float64 `json:"bodyfat"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
