package repos

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"github.com/signbridge/signbridge-backend/internal/types"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrInt64(v int64) *int64     { return &v }

func TestVariantRepoSearch(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	variants := NewVariantRepo(db, log)
	ctx := context.Background()

	for _, lang := range []*types.SignLanguage{
		{Code: "ru-RSL", Name: "Russian Sign Language"},
		{Code: "asl", Name: "American Sign Language"},
	} {
		if err := db.Create(lang).Error; err != nil {
			t.Fatalf("seed language: %v", err)
		}
	}

	type seed struct {
		gloss    string
		synonyms []string
		language string
		emotion  types.Emotion
		fps      int
		duration float64
		priority int
	}
	seeds := []seed{
		{"HELLO", []string{"hi", "greetings"}, "ru-RSL", types.EmotionNeutral, 30, 2.0, 50},
		{"THANKS", []string{"thank you"}, "ru-RSL", types.EmotionHappy, 60, 0.8, 80},
		{"GOODBYE", nil, "asl", types.EmotionNeutral, 24, 3.5, 10},
	}
	for i, s := range seeds {
		gloss := &types.Gloss{Name: s.gloss, Synonyms: datatypes.NewJSONSlice(s.synonyms)}
		if err := db.Create(gloss).Error; err != nil {
			t.Fatalf("seed gloss %s: %v", s.gloss, err)
		}
		fps, duration := s.fps, s.duration
		asset := &types.AnimationAsset{
			FileURL:     "http://localhost:9000/b/" + s.gloss,
			FileKey:     "uploads/" + s.gloss,
			ContentHash: s.gloss,
			Framerate:   &fps,
			Duration:    &duration,
		}
		if err := db.Create(asset).Error; err != nil {
			t.Fatalf("seed asset %d: %v", i, err)
		}
		v := &types.SignVariant{
			GlossID: gloss.ID, AssetID: asset.ID, LanguageID: s.language,
			Emotion: s.emotion, Type: types.VariantTypeLexical, Priority: s.priority,
		}
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed variant %d: %v", i, err)
		}
	}

	names := func(vs []*types.SignVariant) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			if v.Gloss == nil {
				t.Fatalf("gloss not preloaded on variant %d", v.ID)
			}
			out = append(out, v.Gloss.Name)
		}
		return out
	}

	cases := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{"no filter sorts by priority", SearchFilter{}, []string{"THANKS", "HELLO", "GOODBYE"}},
		{"text match on name", SearchFilter{Query: "hello"}, []string{"HELLO"}},
		{"text match on synonym", SearchFilter{Query: "thank you"}, []string{"THANKS"}},
		{"language filter", SearchFilter{LanguageID: "ru-RSL"}, []string{"THANKS", "HELLO"}},
		{"emotion filter", SearchFilter{Emotion: "Happy"}, []string{"THANKS"}},
		{"min fps", SearchFilter{MinFPS: ptrInt(30)}, []string{"THANKS", "HELLO"}},
		{"fps range", SearchFilter{MinFPS: ptrInt(25), MaxFPS: ptrInt(40)}, []string{"HELLO"}},
		{"duration range", SearchFilter{MinDuration: ptrFloat(1.0), MaxDuration: ptrFloat(3.0)}, []string{"HELLO"}},
		{"combined", SearchFilter{Query: "h", LanguageID: "ru-RSL", MinFPS: ptrInt(40)}, []string{"THANKS"}},
		{"sort duration asc", SearchFilter{SortBy: SortDurationAsc}, []string{"THANKS", "HELLO", "GOODBYE"}},
		{"sort duration desc", SearchFilter{SortBy: SortDurationDesc}, []string{"GOODBYE", "HELLO", "THANKS"}},
		{"no match", SearchFilter{Query: "zebra"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := variants.Search(ctx, nil, tc.filter)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tc.want) {
				t.Fatalf("want=%v got=%v", tc.want, gotNames)
			}
			for i := range tc.want {
				if gotNames[i] != tc.want[i] {
					t.Fatalf("position %d: want=%v got=%v", i, tc.want, gotNames)
				}
			}
		})
	}
}

func TestVariantRepoList(t *testing.T) {
	db := newTestDB(t)
	variants := NewVariantRepo(db, newTestLogger())
	ctx := context.Background()

	if err := db.Create(&types.SignLanguage{Code: "asl", Name: "American Sign Language"}).Error; err != nil {
		t.Fatalf("seed language: %v", err)
	}
	gloss := &types.Gloss{Name: "HELLO"}
	if err := db.Create(gloss).Error; err != nil {
		t.Fatalf("seed gloss: %v", err)
	}
	asset := &types.AnimationAsset{FileURL: "u", FileKey: "k", ContentHash: "h"}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	for i := 0; i < 3; i++ {
		v := &types.SignVariant{
			GlossID: gloss.ID, AssetID: asset.ID, LanguageID: "asl",
			Emotion: types.EmotionNeutral, Type: types.VariantTypeLexical, Priority: i * 10,
		}
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed variant %d: %v", i, err)
		}
	}

	got, err := variants.List(ctx, nil, ptrInt64(gloss.ID), "asl", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit: want=2 got=%d", len(got))
	}
	if got[0].Priority < got[1].Priority {
		t.Fatalf("expected priority-descending order, got %d then %d", got[0].Priority, got[1].Priority)
	}

	none, err := variants.List(ctx, nil, nil, "ru-RSL", 10, 0)
	if err != nil {
		t.Fatalf("List other language: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("want no variants for unknown language, got %d", len(none))
	}
}
