package mapper

import (
	"testing"
	"time"

	"github.com/ONSdigital/dp-datadoc-generator/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	testID  = uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	testNow = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
)

func TestPersonTestdata(t *testing.T) {

	Convey("Given the person test data sample built with fixed options", t, func() {
		oslo := time.FixedZone("CET", 60*60)
		doc := PersonTestdata(Options{DocumentVersion: "4.0.0", ID: testID, Now: testNow, Location: oslo})

		Convey("Then the dataset carries the sample literals", func() {
			So(*doc.DocumentVersion, ShouldEqual, "4.0.0")
			dataset := doc.Datadoc.Dataset
			So(*dataset.ShortName, ShouldEqual, "person_testdata_p2021-12-31_p2021-12-31")
			So(dataset.DatasetStatus, ShouldEqual, models.DataSetStatusInternal)
			So(dataset.DatasetState, ShouldEqual, models.DataSetStateProcessedData)
			So(*dataset.ID, ShouldResemble, testID)
			So(dataset.ContainsDataFrom.String(), ShouldEqual, "2021-12-31")
			So(dataset.ContainsDataUntil.String(), ShouldEqual, "2021-12-31")

			name, ok := dataset.Name.Text(models.LanguageEnglish)
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "Person test data")
		})

		Convey("Then the creation time is localised to the given location", func() {
			created := *doc.Datadoc.Dataset.MetadataCreatedDate
			So(created.Equal(testNow), ShouldBeTrue)
			So(created.Location(), ShouldEqual, oslo)
		})

		Convey("Then there are six variables in order", func() {
			var names []string
			for _, v := range doc.Datadoc.Variables {
				names = append(names, *v.ShortName)
			}
			So(names, ShouldResemble, []string{"fnr", "sivilstand", "bostedskommune", "inntekt", "bankinnskudd", "dato"})
		})

		Convey("Then variable ids are derived from the dataset id", func() {
			again := PersonTestdata(Options{ID: testID})
			for i, v := range doc.Datadoc.Variables {
				So(*v.ID, ShouldResemble, *again.Datadoc.Variables[i].ID)
				So(*v.ID, ShouldNotResemble, testID)
			}
			So(*doc.Datadoc.Variables[0].ID, ShouldNotResemble, *doc.Datadoc.Variables[1].ID)
		})

		Convey("Then only fnr identifies a person directly", func() {
			So(*doc.Datadoc.Variables[0].DirectPersonIdentifying, ShouldBeTrue)
			So(doc.Datadoc.Variables[0].VariableRole, ShouldEqual, models.VariableRoleIdentifier)
			for _, v := range doc.Datadoc.Variables[1:] {
				So(v.DirectPersonIdentifying, ShouldBeNil)
			}
		})

		Convey("Then the document dumps without validation errors", func() {
			m, err := models.Dump(doc)
			So(err, ShouldBeNil)
			So(m.Keys(), ShouldResemble, []string{"document_version", "datadoc", "pseudonymization"})
		})
	})

	Convey("Given options with no identifier", t, func() {
		a := PersonTestdata(Options{Now: testNow})
		b := PersonTestdata(Options{Now: testNow})

		Convey("Then each build gets a new random identifier", func() {
			So(*a.Datadoc.Dataset.ID, ShouldNotResemble, *b.Datadoc.Dataset.ID)
			So(a.Datadoc.Dataset.ID.Version(), ShouldEqual, uuid.Version(4))
		})

		Convey("Then timestamps default to UTC", func() {
			So(a.Datadoc.Dataset.MetadataCreatedDate.Location(), ShouldEqual, time.UTC)
		})
	})
}

func TestExampleDataset(t *testing.T) {

	Convey("Given the example dataset sample", t, func() {
		doc := ExampleDataset(Options{DocumentVersion: "4.0.0", ID: testID})

		Convey("Then it describes an external processed dataset with no variables", func() {
			dataset := doc.Datadoc.Dataset
			So(*dataset.ShortName, ShouldEqual, "example_dataset")
			So(dataset.DatasetStatus, ShouldEqual, models.DataSetStatusExternal)
			So(dataset.DatasetState, ShouldEqual, models.DataSetStateProcessedData)
			So(*dataset.Version, ShouldEqual, "1.0.0")
			So(dataset.ContainsDataFrom.String(), ShouldEqual, "2023-01-01")
			So(dataset.ContainsDataUntil.String(), ShouldEqual, "2024-01-01")
			So(doc.Datadoc.Variables, ShouldBeEmpty)
		})
	})
}

func TestBuild(t *testing.T) {

	Convey("Build returns the named sample", t, func() {
		doc, err := Build(SampleExampleDataset, Options{})
		So(err, ShouldBeNil)
		So(*doc.Datadoc.Dataset.ShortName, ShouldEqual, "example_dataset")

		doc, err = Build(SamplePersonTestdata, Options{})
		So(err, ShouldBeNil)
		So(doc.Datadoc.Variables, ShouldHaveLength, 6)
	})

	Convey("Build rejects an unknown sample", t, func() {
		doc, err := Build("household_testdata", Options{})
		So(doc, ShouldBeNil)
		So(errors.Cause(err), ShouldEqual, ErrUnknownSample)
		So(err.Error(), ShouldContainSubstring, "household_testdata")
	})
}

func TestLocalize(t *testing.T) {

	Convey("Localize keeps the instant and changes the location", t, func() {
		tokyo := time.FixedZone("JST", 9*60*60)
		local := Localize(testNow, tokyo)
		So(local.Equal(testNow), ShouldBeTrue)
		So(local.Hour(), ShouldEqual, 18)
		So(local.Location(), ShouldEqual, tokyo)
	})
}
