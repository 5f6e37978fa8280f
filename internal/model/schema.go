package model

// Default column names match the registration sheets this service was built
// for. Other sheets rename them through the job spec or config file.
const (
	DefaultIDColumn       = "Email_ID"
	DefaultPersonalColumn = "Personal_Status"
	DefaultAcademicColumn = "Academic_Status"
	DefaultUploadColumn   = "Upload_Status"
	DefaultPaymentColumn  = "Payment_Status"
	DefaultCompletedValue = "Completed"
)

// Schema names the identifier column and the four status columns of a
// snapshot sheet. It is resolved once at the boundary; the core only ever
// sees the resolved names.
type Schema struct {
	IDColumn       string `json:"idColumn" yaml:"idColumn"`
	PersonalColumn string `json:"personalColumn" yaml:"personalColumn"`
	AcademicColumn string `json:"academicColumn" yaml:"academicColumn"`
	UploadColumn   string `json:"uploadColumn" yaml:"uploadColumn"`
	PaymentColumn  string `json:"paymentColumn" yaml:"paymentColumn"`
	CompletedValue string `json:"completedValue" yaml:"completedValue"`
}

// DefaultSchema returns the column names of the original registration sheets.
func DefaultSchema() Schema {
	return Schema{
		IDColumn:       DefaultIDColumn,
		PersonalColumn: DefaultPersonalColumn,
		AcademicColumn: DefaultAcademicColumn,
		UploadColumn:   DefaultUploadColumn,
		PaymentColumn:  DefaultPaymentColumn,
		CompletedValue: DefaultCompletedValue,
	}
}

// WithDefaults fills any blank field from the default schema, so a job spec
// may override just the columns that differ.
func (s Schema) WithDefaults() Schema {
	def := DefaultSchema()
	if s.IDColumn == "" {
		s.IDColumn = def.IDColumn
	}
	if s.PersonalColumn == "" {
		s.PersonalColumn = def.PersonalColumn
	}
	if s.AcademicColumn == "" {
		s.AcademicColumn = def.AcademicColumn
	}
	if s.UploadColumn == "" {
		s.UploadColumn = def.UploadColumn
	}
	if s.PaymentColumn == "" {
		s.PaymentColumn = def.PaymentColumn
	}
	if s.CompletedValue == "" {
		s.CompletedValue = def.CompletedValue
	}
	return s
}

// Rules returns the classification chain for this schema, most advanced
// stage first. Registered is the fallback, not a rule.
func (s Schema) Rules() []StageRule {
	return []StageRule{
		{Column: s.PaymentColumn, Stage: StagePayment},
		{Column: s.UploadColumn, Stage: StageUpload},
		{Column: s.AcademicColumn, Stage: StageAcademic},
		{Column: s.PersonalColumn, Stage: StagePersonal},
	}
}

// RequiredColumns lists every column the loader must find in a sheet.
func (s Schema) RequiredColumns() []string {
	return []string{s.IDColumn, s.PersonalColumn, s.AcademicColumn, s.UploadColumn, s.PaymentColumn}
}
