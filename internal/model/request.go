package model

// SignupRequest is the self-service registration payload for clients and
// candidates. Every field is required.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// LoginRequest is shared by all three login routes.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyRequest is the create/update payload for companies.
type CompanyRequest struct {
	Name string `json:"name"`
}

// PositionRequest is the create/update payload for positions. Company is a
// company id in hex, empty for none; on update, omitted fields clear the
// stored values (replace, not merge).
type PositionRequest struct {
	Name               string `json:"name"`
	ProjectDescription string `json:"projectDescription"`
	Company            string `json:"company"`
	RedFlag            string `json:"redFlag"`
}

// ClientCreateRequest is the admin-side client creation payload.
type ClientCreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Company   string `json:"company"`
	RedFlag   string `json:"redFlag"`
}

// ClientUpdateRequest replaces a client's editable fields wholesale; the
// password hash and deleted flag are carried over from the stored document.
type ClientUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	RedFlag   string `json:"redFlag"`
}

// CandidateCreateRequest is the admin-side candidate creation payload.
type CandidateCreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// CandidateUpdateRequest replaces a candidate's editable fields wholesale.
type CandidateUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// InterviewSubmission is the public intake payload posted by the external
// interviewing service. A caller-supplied reviewStatus is ignored: records
// always start pending.
type InterviewSubmission struct {
	PositionName        string      `json:"positionName"`
	CandidateID         string      `json:"candidateId"`
	Email               string      `json:"email"`
	InterviewID         string      `json:"interviewID"`
	PositionDescription string      `json:"positionDescription"`
	PositionID          string      `json:"positionId"`
	Summary             interface{} `json:"summary"`
	Transcript          interface{} `json:"transcript"`
	Status              string      `json:"status"`
}
