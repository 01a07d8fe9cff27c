package server

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/gramquest/villagegame/internal/game"
)

type seedVillage struct {
	name        string
	population  int
	waterBodies int
	greenCover  int
	development int
	description string
}

var seedStates = map[string][]seedVillage{
	"Telangana": {
		{"Satvadi", 1250, 35, 60, 45, "A traditional farming village with water scarcity challenges"},
		{"Ramannapeta", 980, 40, 55, 50, "A village with rich cultural heritage and agricultural practice"},
		{"Chintalapalem", 1120, 30, 45, 40, "A village focused on handicrafts and cottage industries"},
		{"Warangal", 1560, 45, 50, 55, "Historic village known for temples and cultural heritage"},
		{"Nizamabad", 1850, 38, 42, 48, "Agricultural village with focus on sustainable farming"},
	},
	"Tamil Nadu": {
		{"Thirupalaikudi", 2450, 55, 70, 60, "A coastal village known for fishing and traditional boat-making"},
		{"Kovilpatti", 1780, 25, 40, 55, "Famous for match factories and traditional sweets"},
		{"Mahabalipuram", 1580, 65, 45, 75, "UNESCO heritage site with ancient temples and stone carvings"},
	},
	"Rajasthan": {
		{"Khimsar", 890, 15, 25, 40, "Desert village known for its fort and sand dunes"},
		{"Mandawa", 1150, 18, 30, 45, "Village famous for painted havelis and frescoes"},
	},
	"Kerala": {
		{"Kumarakom", 1680, 85, 90, 65, "Backwater village famous for houseboats and bird sanctuary"},
		{"Aranmula", 1240, 70, 80, 58, "Heritage village known for metal mirrors and snake boat races"},
	},
	"Andhra Pradesh": {
		{"Lepakshi", 1340, 32, 48, 52, "Village built around a historic temple with hanging pillar"},
		{"Araku", 1520, 48, 82, 50, "Hill station village known for coffee plantations and tribal culture"},
	},
}

type seedSector struct {
	name        string
	description string
	budget      int64
	color       string
	icon        string
}

var seedSectors = []seedSector{
	{"Agriculture", "Develop sustainable farming practices, irrigation systems, and crop management solutions.", 250000, "#556B2F", "fa-wheat-awn"},
	{"Health", "Build medical facilities, promote preventive healthcare, and ensure access to essential services.", 320000, "#A52A2A", "fa-heart-pulse"},
	{"Rural Roads", "Create connectivity solutions including paved roads, bridges, and eco-friendly transportation options.", 500000, "#8B4513", "fa-road"},
	{"Water Supply", "Implement clean water solutions, rainwater harvesting, and sustainable management systems.", 280000, "#007BA7", "fa-droplet"},
	{"Education", "Build schools, develop teaching resources, and create educational programs for all age groups.", 350000, "#CD853F", "fa-school"},
	{"Sanitation", "Develop waste management systems, toilet facilities, and hygiene improvement programs.", 200000, "#A0522D", "fa-toilet"},
}

type seedUser struct {
	username string
	age      int
	gender   string
}

var seedUsers = []seedUser{
	{"rahul", 28, "male"},
	{"priya", 25, "female"},
	{"amit", 30, "male"},
	{"meera", 22, "female"},
	{"ravi", 35, "male"},
}

// SeedDemo populates reference data and a handful of demo players.
// Idempotent: it does nothing once sectors exist.
func SeedDemo(ctx context.Context, logger *slog.Logger, store *SQLiteStore) error {
	n, err := store.CountSectors(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, sec := range seedSectors {
		if _, err := store.db.ExecContext(ctx, `
			INSERT INTO sectors (name, description, budget, color, icon)
			VALUES (?, ?, ?, ?, ?)
		`, sec.name, sec.description, sec.budget, sec.color, sec.icon); err != nil {
			return err
		}
	}

	for name, villages := range seedStates {
		var stateID int64
		if err := store.db.QueryRowContext(ctx, `
			INSERT INTO states (name) VALUES (?) RETURNING id
		`, name).Scan(&stateID); err != nil {
			return err
		}
		for _, v := range villages {
			if _, err := store.db.ExecContext(ctx, `
				INSERT INTO villages (state_id, name, population, water_bodies, green_cover, development, description)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, stateID, v.name, v.population, v.waterBodies, v.greenCover, v.development, v.description); err != nil {
				return err
			}
		}
	}

	// Demo players share a throwaway password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var villageIDs []int64
	rows, err := store.db.QueryContext(ctx, `SELECT id FROM villages ORDER BY id LIMIT ?`, len(seedUsers))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		villageIDs = append(villageIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, u := range seedUsers {
		user, err := store.CreateUser(ctx, u.username, string(hash), u.age, u.gender)
		if err != nil {
			return err
		}
		if i >= len(villageIDs) {
			continue
		}
		impact := game.EnvPositive
		if i >= 3 {
			impact = game.EnvNeutral
		}
		if _, err := store.CreateScore(ctx, ScoreRecord{
			UserID:              user.ID,
			VillageID:           villageIDs[i],
			DevelopmentScore:    92 - i*4,
			BudgetEfficiency:    95 - i*3,
			EnvironmentalImpact: impact,
		}); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded",
		"sectors", len(seedSectors),
		"states", len(seedStates),
		"users", len(seedUsers),
	)
	return nil
}
