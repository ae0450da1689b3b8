package model

// ContentCategory selects a question bank and classifies courses and exercises.
type ContentCategory string

const (
	ContentAerodrome ContentCategory = "aerodrome"
	ContentApproach  ContentCategory = "approach"
	ContentCCR       ContentCategory = "ccr"
)

var contentCategories = []ContentCategory{ContentAerodrome, ContentApproach, ContentCCR}

func ContentCategories() []ContentCategory {
	return append([]ContentCategory(nil), contentCategories...)
}

func (c ContentCategory) Valid() bool {
	for _, known := range contentCategories {
		if c == known {
			return true
		}
	}
	return false
}

// TestClassification tags tests only. It is unrelated to ContentCategory and
// never selects a question bank.
type TestClassification string

const (
	TestFundamentals TestClassification = "fundamentals"
	TestAdvanced     TestClassification = "advanced"
	TestAirspace     TestClassification = "airspace"
	TestEmergency    TestClassification = "emergency"
)

var testClassifications = []TestClassification{TestFundamentals, TestAdvanced, TestAirspace, TestEmergency}

func TestClassifications() []TestClassification {
	return append([]TestClassification(nil), testClassifications...)
}

func (c TestClassification) Valid() bool {
	for _, known := range testClassifications {
		if c == known {
			return true
		}
	}
	return false
}

// Role of a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
