package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportify/transfer-scout/internal/db"
	"github.com/sportify/transfer-scout/internal/types"
)

var seedDatabaseURL string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample clubs, players, and needs",
	Long:  `Inserts a small set of well-known clubs and players plus example need profiles. Existing records (matched by external ID) are left untouched, so the command is safe to re-run.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(seedCmd)
}

type seedNeed struct {
	clubExternalID string
	req            types.ClubNeedRequest
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := seedDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or pass --db-url)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	clubIDs, err := seedClubs(ctx, database)
	if err != nil {
		return err
	}
	if err := seedPlayers(ctx, database, clubIDs); err != nil {
		return err
	}
	if err := seedNeeds(ctx, database, clubIDs); err != nil {
		return err
	}
	if err := seedPerformance(ctx, database); err != nil {
		return err
	}

	fmt.Println("Database seeding completed successfully")
	return nil
}

func seedClubs(ctx context.Context, database *db.DB) (map[string]uuid.UUID, error) {
	clubs := []types.Club{
		{ExternalID: "man_city_1", Name: "Manchester City FC", Country: "England", League: "Premier League", FoundedYear: intPtr(1880), StadiumName: "Etihad Stadium"},
		{ExternalID: "liverpool_1", Name: "Liverpool FC", Country: "England", League: "Premier League", FoundedYear: intPtr(1892), StadiumName: "Anfield"},
		{ExternalID: "real_madrid_1", Name: "Real Madrid CF", Country: "Spain", League: "La Liga", FoundedYear: intPtr(1902), StadiumName: "Santiago Bernabéu"},
		{ExternalID: "barca_1", Name: "FC Barcelona", Country: "Spain", League: "La Liga", FoundedYear: intPtr(1899), StadiumName: "Camp Nou"},
		{ExternalID: "juventus_1", Name: "Juventus FC", Country: "Italy", League: "Serie A", FoundedYear: intPtr(1897), StadiumName: "Allianz Stadium"},
		{ExternalID: "psg_1", Name: "Paris Saint-Germain", Country: "France", League: "Ligue 1", FoundedYear: intPtr(1970), StadiumName: "Parc des Princes"},
	}

	ids := make(map[string]uuid.UUID, len(clubs))
	created := 0
	for i := range clubs {
		existing, err := database.GetClubByExternalID(ctx, clubs[i].ExternalID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up club %s: %w", clubs[i].Name, err)
		}
		if existing != nil {
			ids[clubs[i].ExternalID] = existing.ID
			continue
		}
		club, err := database.CreateClub(ctx, &clubs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to create club %s: %w", clubs[i].Name, err)
		}
		ids[club.ExternalID] = club.ID
		created++
	}

	fmt.Printf("Seeded %d clubs (%d new)\n", len(clubs), created)
	return ids, nil
}

func seedPlayers(ctx context.Context, database *db.DB, clubIDs map[string]uuid.UUID) error {
	players := []struct {
		player types.Player
		club   string
	}{
		{types.Player{
			ExternalID: "haaland_ek_1", FirstName: "Erling", LastName: "Haaland", FullName: "Erling Haaland",
			DateOfBirth: date(2000, 7, 21), Nationality: "Norway",
			PrimaryPosition: types.PositionST, SecondaryPositions: []string{types.PositionCF},
			PreferredFoot: types.FootLeft, HeightCM: intPtr(194), WeightKG: intPtr(88),
			MarketValueEUR: 150000000, ContractEndDate: datePtr(2027, 6, 30), ContractStatus: "active",
		}, "man_city_1"},
		{types.Player{
			ExternalID: "salah_mo_1", FirstName: "Mohamed", LastName: "Salah", FullName: "Mohamed Salah",
			DateOfBirth: date(1992, 6, 15), Nationality: "Egypt",
			PrimaryPosition: types.PositionRW, SecondaryPositions: []string{types.PositionST, types.PositionCAM},
			PreferredFoot: types.FootLeft, HeightCM: intPtr(175), WeightKG: intPtr(78),
			MarketValueEUR: 90000000, ContractEndDate: datePtr(2026, 6, 30), ContractStatus: "active",
		}, "liverpool_1"},
		{types.Player{
			ExternalID: "rodri_1", FirstName: "Rodri", LastName: "Hernández", FullName: "Rodri Hernández Cascante",
			DateOfBirth: date(1996, 6, 22), Nationality: "Spain",
			PrimaryPosition: types.PositionCDM, SecondaryPositions: []string{types.PositionCM},
			PreferredFoot: types.FootRight, HeightCM: intPtr(190), WeightKG: intPtr(82),
			MarketValueEUR: 100000000, ContractEndDate: datePtr(2027, 6, 30), ContractStatus: "active",
		}, "man_city_1"},
		{types.Player{
			ExternalID: "vinicius_1", FirstName: "Vinícius", LastName: "Júnior", FullName: "Vinícius José Paixão de Oliveira Júnior",
			DateOfBirth: date(2000, 7, 12), Nationality: "Brazil",
			PrimaryPosition: types.PositionLW, SecondaryPositions: []string{types.PositionST},
			PreferredFoot: types.FootLeft, HeightCM: intPtr(180), WeightKG: intPtr(76),
			MarketValueEUR: 110000000, ContractEndDate: datePtr(2027, 6, 30), ContractStatus: "active",
		}, "real_madrid_1"},
		{types.Player{
			ExternalID: "bellingham_1", FirstName: "Jude", LastName: "Bellingham", FullName: "Jude Victor William Bellingham",
			DateOfBirth: date(2003, 6, 17), Nationality: "England",
			PrimaryPosition: types.PositionCM, SecondaryPositions: []string{types.PositionCAM, types.PositionCDM},
			PreferredFoot: types.FootLeft, HeightCM: intPtr(186), WeightKG: intPtr(86),
			MarketValueEUR: 120000000, ContractEndDate: datePtr(2029, 6, 30), ContractStatus: "active",
		}, "real_madrid_1"},
		{types.Player{
			ExternalID: "mbappe_1", FirstName: "Kylian", LastName: "Mbappé", FullName: "Kylian Mbappé Lottin",
			DateOfBirth: date(1998, 12, 20), Nationality: "France",
			PrimaryPosition: types.PositionST, SecondaryPositions: []string{types.PositionLW, types.PositionRW},
			PreferredFoot: types.FootRight, HeightCM: intPtr(178), WeightKG: intPtr(73),
			MarketValueEUR: 180000000, ContractEndDate: datePtr(2026, 6, 30), ContractStatus: "active",
		}, "real_madrid_1"},
	}

	created := 0
	for i := range players {
		existing, err := database.GetPlayerByExternalID(ctx, players[i].player.ExternalID)
		if err != nil {
			return fmt.Errorf("failed to look up player %s: %w", players[i].player.FullName, err)
		}
		if existing != nil {
			continue
		}
		if clubID, ok := clubIDs[players[i].club]; ok {
			players[i].player.CurrentClubID = &clubID
		}
		if _, err := database.CreatePlayer(ctx, &players[i].player); err != nil {
			return fmt.Errorf("failed to create player %s: %w", players[i].player.FullName, err)
		}
		created++
	}

	fmt.Printf("Seeded %d players (%d new)\n", len(players), created)
	return nil
}

func seedNeeds(ctx context.Context, database *db.DB, clubIDs map[string]uuid.UUID) error {
	needs := []seedNeed{
		{"liverpool_1", types.ClubNeedRequest{
			PositionsRequired: []string{types.PositionCM, types.PositionCDM},
			AgeMin:            intPtr(23), AgeMax: intPtr(32),
			BudgetMaxEUR:  int64Ptr(80000000),
			TacticalStyle: "pressing", UrgencyLevel: "high",
		}},
		{"barca_1", types.ClubNeedRequest{
			PositionsRequired: []string{types.PositionST, types.PositionRW},
			AgeMin:            intPtr(24), AgeMax: intPtr(35),
			BudgetMaxEUR:  int64Ptr(60000000),
			TacticalStyle: "possession", UrgencyLevel: "medium",
		}},
		{"juventus_1", types.ClubNeedRequest{
			PositionsRequired: []string{types.PositionCDM},
			AgeMin:            intPtr(25), AgeMax: intPtr(33),
			BudgetMaxEUR:  int64Ptr(50000000),
			TacticalStyle: "defensive", UrgencyLevel: "low",
		}},
	}

	for _, need := range needs {
		clubID, ok := clubIDs[need.clubExternalID]
		if !ok {
			return fmt.Errorf("club %s missing from seeded clubs", need.clubExternalID)
		}
		if _, err := database.UpsertNeedProfile(ctx, clubID, &need.req); err != nil {
			return fmt.Errorf("failed to seed need profile for %s: %w", need.clubExternalID, err)
		}
	}

	fmt.Printf("Seeded %d club need profiles\n", len(needs))
	return nil
}

func seedPerformance(ctx context.Context, database *db.DB) error {
	season := fmt.Sprintf("%d/%d", time.Now().Year(), time.Now().Year()+1)

	records := []struct {
		playerExternalID string
		rec              types.PerformanceRecord
	}{
		{"haaland_ek_1", types.PerformanceRecord{Season: season, Appearances: 30, Goals: 28, Assists: 5, MinutesPlayed: 2610, FormScore: 0.88, ConsistencyScore: 0.82}},
		{"salah_mo_1", types.PerformanceRecord{Season: season, Appearances: 32, Goals: 19, Assists: 12, MinutesPlayed: 2790, FormScore: 0.81, ConsistencyScore: 0.85}},
		{"rodri_1", types.PerformanceRecord{Season: season, Appearances: 29, Goals: 6, Assists: 8, MinutesPlayed: 2565, FormScore: 0.84, ConsistencyScore: 0.90}},
		{"vinicius_1", types.PerformanceRecord{Season: season, Appearances: 28, Goals: 16, Assists: 9, MinutesPlayed: 2380, FormScore: 0.79, ConsistencyScore: 0.74}},
		{"bellingham_1", types.PerformanceRecord{Season: season, Appearances: 31, Goals: 14, Assists: 10, MinutesPlayed: 2700, FormScore: 0.86, ConsistencyScore: 0.80}},
		{"mbappe_1", types.PerformanceRecord{Season: season, Appearances: 30, Goals: 24, Assists: 7, MinutesPlayed: 2640, FormScore: 0.83, ConsistencyScore: 0.78}},
	}

	seeded := 0
	for _, r := range records {
		player, err := database.GetPlayerByExternalID(ctx, r.playerExternalID)
		if err != nil {
			return fmt.Errorf("failed to look up player %s: %w", r.playerExternalID, err)
		}
		if player == nil {
			continue
		}
		r.rec.PlayerID = player.ID
		if err := database.UpsertPerformance(ctx, &r.rec); err != nil {
			return fmt.Errorf("failed to seed performance for %s: %w", r.playerExternalID, err)
		}
		seeded++
	}

	fmt.Printf("Seeded %d performance records for season %s\n", seeded, season)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
