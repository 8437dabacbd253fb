package models

import (
	"github.com/pkg/errors"
)

// ErrInvalidValue is returned when a field is given a value outside its enumeration
var ErrInvalidValue = errors.New("invalid value")

// DataSetStatus is the publication status of a dataset
type DataSetStatus string

// DataSetStatus values
const (
	DataSetStatusDraft      DataSetStatus = "DRAFT"
	DataSetStatusInternal   DataSetStatus = "INTERNAL"
	DataSetStatusExternal   DataSetStatus = "EXTERNAL"
	DataSetStatusDeprecated DataSetStatus = "DEPRECATED"
)

// Validate checks the status is one of the known values
func (s DataSetStatus) Validate() error {
	return oneOf("dataset status", string(s),
		DataSetStatusDraft, DataSetStatusInternal, DataSetStatusExternal, DataSetStatusDeprecated)
}

// DataSetState is the processing stage a dataset has reached
type DataSetState string

// DataSetState values
const (
	DataSetStateSourceData    DataSetState = "SOURCE_DATA"
	DataSetStateInputData     DataSetState = "INPUT_DATA"
	DataSetStateProcessedData DataSetState = "PROCESSED_DATA"
	DataSetStateStatistics    DataSetState = "STATISTICS"
	DataSetStateOutputData    DataSetState = "OUTPUT_DATA"
)

// Validate checks the state is one of the known values
func (s DataSetState) Validate() error {
	return oneOf("dataset state", string(s),
		DataSetStateSourceData, DataSetStateInputData, DataSetStateProcessedData,
		DataSetStateStatistics, DataSetStateOutputData)
}

// Assessment is the security classification of a dataset
type Assessment string

// Assessment values
const (
	AssessmentSensitive Assessment = "SENSITIVE"
	AssessmentProtected Assessment = "PROTECTED"
	AssessmentOpen      Assessment = "OPEN"
)

// Validate checks the assessment is one of the known values
func (a Assessment) Validate() error {
	return oneOf("assessment", string(a), AssessmentSensitive, AssessmentProtected, AssessmentOpen)
}

// TemporalityType describes how the values of a dataset or variable relate to time
type TemporalityType string

// TemporalityType values
const (
	TemporalityTypeFixed       TemporalityType = "FIXED"
	TemporalityTypeStatus      TemporalityType = "STATUS"
	TemporalityTypeAccumulated TemporalityType = "ACCUMULATED"
	TemporalityTypeEvent       TemporalityType = "EVENT"
)

// Validate checks the temporality type is one of the known values
func (t TemporalityType) Validate() error {
	return oneOf("temporality type", string(t),
		TemporalityTypeFixed, TemporalityTypeStatus, TemporalityTypeAccumulated, TemporalityTypeEvent)
}

// DataType is the type of the values held in a variable
type DataType string

// DataType values
const (
	DataTypeString   DataType = "STRING"
	DataTypeInteger  DataType = "INTEGER"
	DataTypeFloat    DataType = "FLOAT"
	DataTypeDatetime DataType = "DATETIME"
	DataTypeBoolean  DataType = "BOOLEAN"
)

// Validate checks the data type is one of the known values
func (d DataType) Validate() error {
	return oneOf("data type", string(d),
		DataTypeString, DataTypeInteger, DataTypeFloat, DataTypeDatetime, DataTypeBoolean)
}

// VariableRole is the role a variable plays in its dataset
type VariableRole string

// VariableRole values
const (
	VariableRoleIdentifier VariableRole = "IDENTIFIER"
	VariableRoleMeasure    VariableRole = "MEASURE"
	VariableRoleStartTime  VariableRole = "START_TIME"
	VariableRoleStopTime   VariableRole = "STOP_TIME"
	VariableRoleAttribute  VariableRole = "ATTRIBUTE"
)

// Validate checks the role is one of the known values
func (r VariableRole) Validate() error {
	return oneOf("variable role", string(r),
		VariableRoleIdentifier, VariableRoleMeasure, VariableRoleStartTime,
		VariableRoleStopTime, VariableRoleAttribute)
}

// UseRestriction limits what a dataset may be used for
type UseRestriction string

// UseRestriction values
const (
	UseRestrictionDeletionAnonymization    UseRestriction = "DELETION_ANONYMIZATION"
	UseRestrictionProcessLimitations       UseRestriction = "PROCESS_LIMITATIONS"
	UseRestrictionSecondaryUseRestrictions UseRestriction = "SECONDARY_USE_RESTRICTIONS"
)

// Validate checks the restriction is one of the known values
func (u UseRestriction) Validate() error {
	return oneOf("use restriction", string(u),
		UseRestrictionDeletionAnonymization, UseRestrictionProcessLimitations,
		UseRestrictionSecondaryUseRestrictions)
}

// oneOf accepts the empty string, which marks an unset field
func oneOf[T ~string](field, value string, allowed ...T) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if string(a) == value {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidValue, "%s %q", field, value)
}
