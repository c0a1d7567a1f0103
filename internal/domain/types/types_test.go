package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/draftintel/internal/domain/model"
	types "github.com/okian/draftintel/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOwnerRecordJSON(t *testing.T) {
	Convey("Given owner records", t, func() {
		Convey("When the record has no advisory", func() {
			out, err := json.Marshal(types.OwnerRecord{ID: "o1", Name: "A", LeagueRank: 2})
			So(err, ShouldBeNil)

			var m map[string]any
			So(json.Unmarshal(out, &m), ShouldBeNil)

			Convey("Then advisory keys are absent", func() {
				So(m, ShouldNotContainKey, "strengths")
				So(m, ShouldNotContainKey, "weaknesses")
				So(m, ShouldNotContainKey, "tradeRecommendations")
				So(m["leagueRank"], ShouldEqual, float64(2))
				So(m["isYou"], ShouldEqual, false)
			})
		})

		Convey("When the record belongs to the current user", func() {
			rec := types.OwnerRecord{ID: "me", IsYou: true, Advisory: types.NewAdvisory()}
			rec.Strengths = append(rec.Strengths, "You're a top-3 drafter in your league!")
			out, err := json.Marshal(rec)
			So(err, ShouldBeNil)

			var m map[string]any
			So(json.Unmarshal(out, &m), ShouldBeNil)

			Convey("Then advisory lists are inlined, empty ones as []", func() {
				So(m["strengths"], ShouldResemble, []any{"You're a top-3 drafter in your league!"})
				So(m["weaknesses"], ShouldResemble, []any{})
				So(m["tradeRecommendations"], ShouldResemble, []any{})
			})
		})
	})
}

func TestReportJSON(t *testing.T) {
	Convey("Given a report without a current user", t, func() {
		r := types.Report{
			League:     model.League(`{"name":"Dynasty"}`),
			Drafts:     []model.Draft{{ID: "d1"}},
			OwnerStats: []types.OwnerRecord{},
		}
		out, err := json.Marshal(r)
		So(err, ShouldBeNil)

		Convey("Then userStats is omitted and league passes through", func() {
			So(string(out), ShouldEqual, `{"league":{"name":"Dynasty"},"drafts":[{"draft_id":"d1"}],"ownerStats":[]}`)
		})
	})
}
