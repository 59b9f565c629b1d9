package main

import (
	"context"
	"log"

	"yardflow/internal/config"
	"yardflow/internal/db"
	"yardflow/internal/model"
	"yardflow/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	motoRepo := repository.NewMotorcycleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	motosSeeded, err := seedMotorcycles(ctx, motoRepo)
	if err != nil {
		log.Fatalf("Failed to seed motorcycles: %v", err)
	}
	usersSeeded, err := seedUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Motorcycles created: %d", motosSeeded)
	log.Printf("  - Users created: %d", usersSeeded)
}

func seedMotorcycles(ctx context.Context, repo repository.MotorcycleRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("Motorcycles already present (%d), skipping", count)
		return 0, nil
	}

	fixtures := []struct {
		placa   string
		modelo  string
		idMotor int
		diaria  string
	}{
		{"ABC1D23", "Honda CG 160", 160, "55.00"},
		{"DEF4G56", "Yamaha Fazer 250", 250, "75.50"},
		{"GHI7J89", "Honda CB 500F", 500, "120.00"},
		{"KLM0N12", "Kawasaki Z400", 400, "100.00"},
		{"OPQ3R45", "BMW G 310 R", 310, "140.00"},
	}

	seeded := 0
	for _, f := range fixtures {
		diaria, err := model.MoneyFromString(f.diaria)
		if err != nil {
			return seeded, err
		}
		moto := &model.Motorcycle{
			Placa:       f.placa,
			Modelo:      f.modelo,
			IDMotor:     f.idMotor,
			ValorDiaria: diaria,
		}
		if err := repo.Create(ctx, moto); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

func seedUsers(ctx context.Context, repo repository.UserRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("Users already present (%d), skipping", count)
		return 0, nil
	}

	fixtures := []model.User{
		{Nome: "Administrador", Email: "admin@yardflow.local", Senha: "admin123", Funcao: "admin"},
		{Nome: "Operador", Email: "operador@yardflow.local", Senha: "operador123", Funcao: "operador"},
	}

	seeded := 0
	for i := range fixtures {
		if err := repo.Create(ctx, &fixtures[i]); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
