package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// MetadataContainer is the top level envelope of a metadata document
type MetadataContainer struct {
	DocumentVersion  *string                   `json:"document_version"`
	Datadoc          *DatadocMetadata          `json:"datadoc"`
	Pseudonymization *PseudonymizationMetadata `json:"pseudonymization"`
}

// DatadocMetadata describes a dataset and its variables
type DatadocMetadata struct {
	PercentageComplete *int       `json:"percentage_complete"`
	DocumentVersion    *string    `json:"document_version"`
	Dataset            *Dataset   `json:"dataset"`
	Variables          []Variable `json:"variables"`
}

// PseudonymizationMetadata records which variables of a dataset are pseudonymized
type PseudonymizationMetadata struct {
	DocumentVersion *string  `json:"document_version"`
	PseudoVariables []string `json:"pseudo_variables"`
}

// Dataset holds the descriptive fields of the documented data product
type Dataset struct {
	ShortName                  *string            `json:"short_name"`
	Assessment                 Assessment         `json:"assessment"`
	DatasetStatus              DataSetStatus      `json:"dataset_status"`
	DatasetState               DataSetState       `json:"dataset_state"`
	Name                       LanguageStringType `json:"name"`
	DataSource                 LanguageStringType `json:"data_source"`
	PopulationDescription      LanguageStringType `json:"population_description"`
	Version                    *string            `json:"version"`
	VersionDescription         LanguageStringType `json:"version_description"`
	UnitType                   LanguageStringType `json:"unit_type"`
	TemporalityType            TemporalityType    `json:"temporality_type"`
	Description                LanguageStringType `json:"description"`
	SubjectField               LanguageStringType `json:"subject_field"`
	Keyword                    []string           `json:"keyword"`
	SpatialCoverageDescription LanguageStringType `json:"spatial_coverage_description"`
	ContainsPersonalData       *bool              `json:"contains_personal_data"`
	UseRestriction             UseRestriction     `json:"use_restriction"`
	UseRestrictionDate         *Date              `json:"use_restriction_date"`
	ID                         *uuid.UUID         `json:"id"`
	Owner                      LanguageStringType `json:"owner"`
	FilePath                   *string            `json:"file_path"`
	MetadataCreatedDate        *time.Time         `json:"metadata_created_date"`
	MetadataCreatedBy          *string            `json:"metadata_created_by"`
	MetadataLastUpdatedDate    *time.Time         `json:"metadata_last_updated_date"`
	MetadataLastUpdatedBy      *string            `json:"metadata_last_updated_by"`
	ContainsDataFrom           *Date              `json:"contains_data_from"`
	ContainsDataUntil          *Date              `json:"contains_data_until"`
}

// Variable describes one column of a dataset
type Variable struct {
	ShortName               *string            `json:"short_name"`
	Name                    LanguageStringType `json:"name"`
	DataType                DataType           `json:"data_type"`
	VariableRole            VariableRole       `json:"variable_role"`
	DefinitionURI           *url.URL           `json:"definition_uri"`
	DirectPersonIdentifying *bool              `json:"direct_person_identifying"`
	DataSource              LanguageStringType `json:"data_source"`
	PopulationDescription   LanguageStringType `json:"population_description"`
	Comment                 LanguageStringType `json:"comment"`
	TemporalityType         TemporalityType    `json:"temporality_type"`
	MeasurementUnit         LanguageStringType `json:"measurement_unit"`
	Format                  *string            `json:"format"`
	ClassificationURI       *url.URL           `json:"classification_uri"`
	SentinelValueURI        *url.URL           `json:"sentinel_value_uri"`
	InvalidValueDescription LanguageStringType `json:"invalid_value_description"`
	ID                      *uuid.UUID         `json:"id"`
	ContainsDataFrom        *Date              `json:"contains_data_from"`
	ContainsDataUntil       *Date              `json:"contains_data_until"`
}

// String returns a pointer to s, for populating optional fields
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for populating optional fields
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for populating optional fields
func Int(i int) *int {
	return &i
}
