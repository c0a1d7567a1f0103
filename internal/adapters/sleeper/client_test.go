package sleeper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/draftintel/internal/adapters/sleeper"
	"github.com/okian/draftintel/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newUpstream() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/league/L1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"league_id":"L1","name":"Dynasty Bros","season":"2024"}`))
	})
	mux.HandleFunc("/league/L1/users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"user_id":"u1","display_name":"Ace"},{"user_id":"u2","username":"bee"}]`))
	})
	mux.HandleFunc("/league/L1/rosters", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"roster_id":1,"owner_id":"u1","players":["4034","6794"]},{"roster_id":2,"owner_id":null,"players":null}]`))
	})
	mux.HandleFunc("/league/L1/drafts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"draft_id":"D1","season":"2023"},{"draft_id":"D2","season":"2024"}]`))
	})
	mux.HandleFunc("/draft/D1/picks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "draftintel-test" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`[{"roster_id":1,"player_id":"4034","round":1,"pick_no":1,"draft_id":"D1"},{"roster_id":null,"player_id":"9"}]`))
	})
	mux.HandleFunc("/draft/BAD/picks", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	mux.HandleFunc("/draft/SLOW/picks", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	})
	return httptest.NewServer(mux)
}

func TestClient_Endpoints(t *testing.T) {
	Convey("Given a client against a fake league API", t, func() {
		srv := newUpstream()
		defer srv.Close()
		c := sleeper.NewClient(sleeper.WithBaseURL(srv.URL), sleeper.WithUserAgent("draftintel-test"))
		ctx := context.Background()

		Convey("When fetching league metadata", func() {
			league, err := c.League(ctx, "L1")

			Convey("Then the raw object is returned", func() {
				So(err, ShouldBeNil)
				So(string(league), ShouldContainSubstring, `"name":"Dynasty Bros"`)
			})
		})

		Convey("When fetching users and rosters", func() {
			users, err := c.Users(ctx, "L1")
			So(err, ShouldBeNil)
			rosters, err := c.Rosters(ctx, "L1")
			So(err, ShouldBeNil)

			Convey("Then they are decoded, nulls as zero values", func() {
				So(users, ShouldHaveLength, 2)
				So(users[1].Name(), ShouldEqual, "bee")
				So(rosters, ShouldHaveLength, 2)
				So(rosters[0].Holds("6794"), ShouldBeTrue)
				So(rosters[1].OwnerID, ShouldEqual, "")
				So(rosters[1].Players, ShouldBeNil)
			})
		})

		Convey("When fetching drafts and picks", func() {
			drafts, err := c.Drafts(ctx, "L1")
			So(err, ShouldBeNil)
			picks, err := c.DraftPicks(ctx, drafts[0].ID)
			So(err, ShouldBeNil)

			Convey("Then ids and roster links are extracted", func() {
				So(drafts[0].ID, ShouldEqual, "D1")
				So(drafts[1].ID, ShouldEqual, "D2")
				So(picks, ShouldHaveLength, 2)
				So(picks[0].RosterID, ShouldEqual, 1)
				So(picks[1].HasRoster(), ShouldBeFalse)
			})
		})
	})
}

func TestClient_Failures(t *testing.T) {
	Convey("Given a client against a fake league API", t, func() {
		srv := newUpstream()
		defer srv.Close()
		c := sleeper.NewClient(sleeper.WithBaseURL(srv.URL), sleeper.WithUserAgent("draftintel-test"))
		ctx := context.Background()

		Convey("When the upstream answers 404", func() {
			_, err := c.League(ctx, "missing")

			Convey("Then it is a retrieval failure with the status", func() {
				So(errors.Is(err, sleeper.ErrRetrieval), ShouldBeTrue)
				So(errors.Is(err, sleeper.ErrStatus), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "404")
			})
		})

		Convey("When the body is not JSON", func() {
			_, err := c.DraftPicks(ctx, "BAD")

			Convey("Then it is a retrieval failure", func() {
				So(errors.Is(err, sleeper.ErrRetrieval), ShouldBeTrue)
				So(errors.Is(err, sleeper.ErrStatus), ShouldBeFalse)
			})
		})

		Convey("When the upstream is slower than the timeout", func() {
			fast := sleeper.NewClient(sleeper.WithBaseURL(srv.URL), sleeper.WithTimeout(20*time.Millisecond))
			_, err := fast.DraftPicks(ctx, "SLOW")

			Convey("Then it is a retrieval failure", func() {
				So(errors.Is(err, sleeper.ErrRetrieval), ShouldBeTrue)
			})
		})

		Convey("When the server is unreachable", func() {
			dead := sleeper.NewClient(sleeper.WithBaseURL("http://127.0.0.1:1"))
			_, err := dead.Drafts(ctx, "L1")

			Convey("Then it is a retrieval failure", func() {
				So(errors.Is(err, sleeper.ErrRetrieval), ShouldBeTrue)
			})
		})
	})
}
