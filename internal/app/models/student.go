package models

import "time"

// Student is the full student document: one row, with every embedded
// collection stored alongside it. The JSON field names match the wire
// contract the frontend already speaks.
type Student struct {
	ID         int64   `json:"-" db:"id"`
	StudentID  string  `json:"studentId" db:"student_id"`
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Password   string  `json:"-" db:"password"`
	College    string  `json:"college" db:"college"`
	Department string  `json:"department" db:"department"`
	Year       int     `json:"year" db:"year"`
	Semester   int     `json:"semester" db:"semester"`
	RollNumber string  `json:"rollNumber" db:"roll_number"`
	CGPA       float64 `json:"cgpa" db:"cgpa"`

	Profile              Profile               `json:"profile" db:"profile"`
	PersonalCertificates []PersonalCertificate `json:"personalCertificates" db:"personal_certificates"`
	AcademicCertificates []AcademicCertificate `json:"academicCertificates" db:"academic_certificates"`
	Projects             []Project             `json:"projects" db:"projects"`
	SemesterMarks        []SemesterMark        `json:"semesterMarks" db:"semester_marks"`
	Skills               map[string]int        `json:"skills" db:"skills"`

	// Version is the optimistic-concurrency token; bumped on every write.
	Version   int64     `json:"-" db:"version"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Profile is the free-form profile sub-document. Document fields hold data
// URIs or external URLs.
type Profile struct {
	ProfileImage       string   `json:"profileImage,omitempty"`
	AadharNumber       string   `json:"aadharNumber,omitempty"`
	MobileNumber       string   `json:"mobileNumber,omitempty"`
	CollegeEmail       string   `json:"collegeEmail,omitempty"`
	Class10Certificate string   `json:"class10Certificate,omitempty"`
	Class12Certificate string   `json:"class12Certificate,omitempty"`
	DiplomaCertificate string   `json:"diplomaCertificate,omitempty"`
	BachelorDegree     string   `json:"bachelorDegree,omitempty"`
	MasterDegree       string   `json:"masterDegree,omitempty"`
	DoctorDegree       string   `json:"doctorDegree,omitempty"`
	LinkedinProfile    string   `json:"linkedinProfile,omitempty"`
	GithubProfile      string   `json:"githubProfile,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Hobbies            []string `json:"hobbies,omitempty"`
	CurrentSGPA        float64  `json:"currentSGPA"`
	OverallCGPA        float64  `json:"overallCGPA"`
}

// PersonalCertificate is self-reported and visible immediately.
type PersonalCertificate struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	URL      string    `json:"url,omitempty"`
	Date     string    `json:"date"`
	Category string    `json:"category"`
	Issuer   string    `json:"issuer"`
	AddedAt  time.Time `json:"addedAt"`
}

// AcademicCertificate is submitted for teacher review and carries the
// pending/approved/rejected lifecycle.
type AcademicCertificate struct {
	ID               string            `json:"_id"`
	Domain           string            `json:"domain"`
	CertificateName  string            `json:"certificateName"`
	Image            string            `json:"image,omitempty"`
	CertificateURL   string            `json:"certificateUrl,omitempty"`
	Date             string            `json:"date"`
	IssuedBy         string            `json:"issuedBy"`
	Description      string            `json:"description,omitempty"`
	Skills           []string          `json:"skills"`
	Duration         string            `json:"duration,omitempty"`
	Location         string            `json:"location,omitempty"`
	OrganizationType string            `json:"organizationType,omitempty"`
	Status           CertificateStatus `json:"status"`
	Feedback         string            `json:"feedback,omitempty"`
	SubmittedAt      time.Time         `json:"submittedAt"`
	ReviewedAt       *time.Time        `json:"reviewedAt,omitempty"`
}

// Project is a student portfolio entry.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubLink  string    `json:"githubLink"`
	DeployLink  string    `json:"deployLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SemesterMark is one (semester, year) academic record.
type SemesterMark struct {
	Semester int           `json:"semester"`
	Year     int           `json:"year"`
	SGPA     float64       `json:"sgpa"`
	Subjects []SubjectMark `json:"subjects"`
}

// SubjectMark is a per-subject breakdown inside a SemesterMark.
type SubjectMark struct {
	Name  string `json:"name"`
	Marks int    `json:"marks"`
	Grade string `json:"grade"`
}
