package model

// Stage is a registrant's furthest-reached point in the signup progression.
type Stage string

const (
	StageRegistered Stage = "Registered"
	StagePersonal   Stage = "Personal"
	StageAcademic   Stage = "Academic"
	StageUpload     Stage = "Upload"
	StagePayment    Stage = "Payment"
)

// CanonicalStages returns the progression order used for matrix rows and
// columns. The slice is freshly allocated so callers can reorder it.
func CanonicalStages() []Stage {
	return []Stage{StageRegistered, StagePersonal, StageAcademic, StageUpload, StagePayment}
}

// StageRule binds one status column to the stage it proves when the column
// holds the completed value. Rules are evaluated in order, so a chain should
// list the most advanced stage first.
type StageRule struct {
	Column string `json:"column"`
	Stage  Stage  `json:"stage"`
}
