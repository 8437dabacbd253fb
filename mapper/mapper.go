package mapper

import (
	"net/url"
	"time"

	"github.com/ONSdigital/dp-datadoc-generator/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sample names accepted by Build
const (
	SamplePersonTestdata = "person_testdata"
	SampleExampleDataset = "example_dataset"
)

// ErrUnknownSample is returned by Build for a sample it has no builder for
var ErrUnknownSample = errors.New("unknown sample")

const createdBy = "default_user@ssb.no"

// Options holds the values a builder takes from its caller rather than from
// the environment. A zero ID is replaced by a random one, a zero Now by the
// current time and a nil Location by UTC.
type Options struct {
	DocumentVersion string
	ID              uuid.UUID
	Now             time.Time
	Location        *time.Location
}

func (o Options) id() uuid.UUID {
	if o.ID == uuid.Nil {
		return uuid.New()
	}
	return o.ID
}

func (o Options) now() time.Time {
	loc := o.Location
	if loc == nil {
		loc = time.UTC
	}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Localize(now, loc)
}

// Localize returns t in the given location
func Localize(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// Build returns the named sample document
func Build(sample string, opts Options) (*models.MetadataContainer, error) {
	switch sample {
	case SamplePersonTestdata:
		return PersonTestdata(opts), nil
	case SampleExampleDataset:
		return ExampleDataset(opts), nil
	}
	return nil, errors.Wrapf(ErrUnknownSample, "%q", sample)
}

// ExampleDataset returns a document describing a dataset with no variables
func ExampleDataset(opts Options) *models.MetadataContainer {
	id := opts.id()
	return &models.MetadataContainer{
		DocumentVersion: models.String(opts.DocumentVersion),
		Datadoc: &models.DatadocMetadata{
			DocumentVersion: models.String(opts.DocumentVersion),
			Dataset: &models.Dataset{
				ShortName:         models.String("example_dataset"),
				DatasetStatus:     models.DataSetStatusExternal,
				DatasetState:      models.DataSetStateProcessedData,
				Version:           models.String("1.0.0"),
				ID:                &id,
				ContainsDataFrom:  models.NewDate(2023, time.January, 1).Ptr(),
				ContainsDataUntil: models.NewDate(2024, time.January, 1).Ptr(),
			},
			Variables: []models.Variable{},
		},
	}
}

// PersonTestdata returns a document describing the person test dataset and
// its six variables
func PersonTestdata(opts Options) *models.MetadataContainer {
	id := opts.id()
	now := opts.now()
	period := models.NewDate(2021, time.December, 31)

	return &models.MetadataContainer{
		DocumentVersion: models.String(opts.DocumentVersion),
		Datadoc: &models.DatadocMetadata{
			DocumentVersion: models.String(opts.DocumentVersion),
			Dataset: &models.Dataset{
				ShortName:     models.String("person_testdata_p2021-12-31_p2021-12-31"),
				Assessment:    models.AssessmentProtected,
				DatasetStatus: models.DataSetStatusInternal,
				DatasetState:  models.DataSetStateProcessedData,
				Name: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Personopplysninger testdata"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Person test data"},
				},
				DataSource: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Folkeregisteret"},
				},
				PopulationDescription: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Personer bosatt i Norge per 31.12.2021"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Persons resident in Norway on 31.12.2021"},
				},
				Version: models.String("1"),
				VersionDescription: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Første versjon"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "First version"},
				},
				UnitType: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Person"},
				},
				TemporalityType: models.TemporalityTypeStatus,
				Description: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Syntetiske personopplysninger til test"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Synthetic personal data for testing"},
				},
				SubjectField: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Befolkning"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Population"},
				},
				Keyword: []string{"person", "testdata", "befolkning"},
				SpatialCoverageDescription: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Norge"},
					{LanguageCode: models.LanguageNynorsk, LanguageText: "Noreg"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Norway"},
				},
				ContainsPersonalData: models.Bool(true),
				ID:                   &id,
				Owner: models.LanguageStringType{
					{LanguageCode: models.LanguageBokmal, LanguageText: "Seksjon for metadata"},
					{LanguageCode: models.LanguageEnglish, LanguageText: "Metadata section"},
				},
				FilePath:            models.String("klargjorte_data/person_testdata_p2021-12-31_p2021-12-31_v1.parquet"),
				MetadataCreatedDate: &now,
				MetadataCreatedBy:   models.String(createdBy),
				ContainsDataFrom:    period.Ptr(),
				ContainsDataUntil:   period.Ptr(),
			},
			Variables: []models.Variable{
				variable(id, "fnr", "Fødselsnummer", "National identity number",
					models.DataTypeString, models.VariableRoleIdentifier, func(v *models.Variable) {
						v.DirectPersonIdentifying = models.Bool(true)
						v.DefinitionURI = mustParse("https://www.ssb.no/a/metadata/conceptvariable/vardok/26/nb")
						v.Comment = models.LanguageStringType{
							{LanguageCode: models.LanguageBokmal, LanguageText: "Pseudonymisert"},
							{LanguageCode: models.LanguageEnglish, LanguageText: "Pseudonymized"},
						}
					}),
				variable(id, "sivilstand", "Sivilstand", "Marital status",
					models.DataTypeString, models.VariableRoleMeasure, func(v *models.Variable) {
						v.DefinitionURI = mustParse("https://www.ssb.no/a/metadata/conceptvariable/vardok/91/nb")
						v.ClassificationURI = mustParse("https://www.ssb.no/klass/klassifikasjoner/19")
					}),
				variable(id, "bostedskommune", "Bostedskommune", "Municipality of residence",
					models.DataTypeString, models.VariableRoleMeasure, func(v *models.Variable) {
						v.DefinitionURI = mustParse("https://www.ssb.no/a/metadata/conceptvariable/vardok/1060/nb")
						v.ClassificationURI = mustParse("https://www.ssb.no/klass/klassifikasjoner/131")
						v.Format = models.String("KKKK")
					}),
				variable(id, "inntekt", "Inntekt", "Income",
					models.DataTypeInteger, models.VariableRoleMeasure, func(v *models.Variable) {
						v.MeasurementUnit = kroner()
						v.Comment = models.LanguageStringType{
							{LanguageCode: models.LanguageBokmal, LanguageText: "Samlet inntekt før skatt"},
						}
					}),
				variable(id, "bankinnskudd", "Bankinnskudd", "Bank deposits",
					models.DataTypeInteger, models.VariableRoleMeasure, func(v *models.Variable) {
						v.MeasurementUnit = kroner()
						v.TemporalityType = models.TemporalityTypeStatus
					}),
				variable(id, "dato", "Dato", "Date",
					models.DataTypeDatetime, models.VariableRoleStartTime, func(v *models.Variable) {
						v.Format = models.String("%Y-%m-%d")
						v.ContainsDataFrom = period.Ptr()
						v.ContainsDataUntil = period.Ptr()
					}),
			},
		},
	}
}

// variable derives the variable id from the dataset id and short name, so
// variables keep their ids when a document is rebuilt for the same dataset
func variable(datasetID uuid.UUID, shortName, nb, en string, dataType models.DataType, role models.VariableRole, set func(*models.Variable)) models.Variable {
	id := uuid.NewSHA1(datasetID, []byte(shortName))
	v := models.Variable{
		ShortName: models.String(shortName),
		Name: models.LanguageStringType{
			{LanguageCode: models.LanguageBokmal, LanguageText: nb},
			{LanguageCode: models.LanguageEnglish, LanguageText: en},
		},
		DataType:     dataType,
		VariableRole: role,
		ID:           &id,
	}
	set(&v)
	return v
}

func kroner() models.LanguageStringType {
	return models.LanguageStringType{
		{LanguageCode: models.LanguageBokmal, LanguageText: "Kroner"},
		{LanguageCode: models.LanguageEnglish, LanguageText: "Norwegian kroner"},
	}
}

// mustParse is only used with the literal URLs above
func mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
