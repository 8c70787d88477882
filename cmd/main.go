package main

import (
	"context"

	"quizAgent/internal/browser"
	"quizAgent/internal/cli"
	"quizAgent/internal/config"
	"quizAgent/internal/database"
	"quizAgent/internal/llm"
	"quizAgent/internal/logger"
	"quizAgent/internal/migrations"
	"quizAgent/internal/ocr"
	"quizAgent/internal/quiz"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.DeepSeek.APIKey == "" {
		log.Fatal("Не задан DEEPSEEK_API_KEY")
	}
	if cfg.Quiz.Username == "" || cfg.Quiz.Password == "" {
		log.Fatal("Не заданы QUIZ_USERNAME / QUIZ_PASSWORD")
	}

	// Персистентность опциональна: без DB_HOST прогон идёт без записи в БД
	var repo *database.RunRepository
	if cfg.Database.Host != "" {
		if err := migrations.Run(cfg, log); err != nil {
			log.Fatal("Ошибка миграций", zap.Error(err))
		}

		db, err := database.New(cfg, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close(log)

		repo = database.NewRunRepository(db.DB)
	}

	input := cli.NewUserInputProvider()

	quizURL := cfg.Quiz.URL
	if quizURL == "" {
		quizURL, err = input.Ask(ctx, "Ссылка на страницу с вопросами:")
		if err != nil || quizURL == "" {
			log.Fatal("Ссылка не задана")
		}
	}

	language := cfg.Quiz.Language
	if language == "" {
		language, err = input.AskDefault(ctx, "Язык программирования для кодовых вопросов", "C语言")
		if err != nil {
			log.Fatal("Язык не задан")
		}
	}

	llmClient := llm.NewClient(cfg.DeepSeek, recorderOrNil(repo), log)

	var recognizer quiz.FormulaRecognizer
	if cfg.OCR.Enabled && cfg.OCR.Endpoint != "" {
		recognizer = ocr.NewClient(cfg.OCR.Endpoint, cfg.OCR.Token, log)
		log.Info("Распознавание формул включено", zap.String("endpoint", cfg.OCR.Endpoint))
	}

	br := browser.New(browser.Config{
		Headless:    cfg.Browser.Headless,
		UserDataDir: cfg.Browser.UserDataDir,
		Display:     cfg.Browser.Display,
		Timeout:     cfg.Quiz.WaitTimeout,
	})
	if err := br.Launch(ctx); err != nil {
		log.Fatal("Не удалось запустить браузер", zap.Error(err))
	}
	defer br.Close()

	// Первая загрузка страницы бывает долгой, поэтому идёт через
	// браузерный Navigate с его отдельным таймаутом
	if err := br.Navigate(ctx, quizURL); err != nil {
		log.Fatal("Не удалось открыть страницу входа", zap.Error(err))
	}

	solverCfg := quiz.Config{
		Language:      language,
		UnknownAsCode: cfg.Quiz.UnknownAsCode,
		WaitTimeout:   cfg.Quiz.WaitTimeout,
		ShortTimeout:  cfg.Quiz.ShortTimeout,
		Selectors:     quiz.DefaultSelectors(),
	}

	if repo != nil {
		run := &database.QuizRun{URL: quizURL, Language: language, Status: "running"}
		if err := repo.CreateRun(run); err != nil {
			log.Warn("Не удалось создать запись прогона", zap.Error(err))
		} else {
			solverCfg.RunID = &run.ID
			llmClient.SetRun(run.ID)
		}
	}

	solver := quiz.NewSolver(br.Page(), llmClient, recognizer, repo, log, solverCfg)

	if err := solver.Login(ctx, cfg.Quiz.Username, cfg.Quiz.Password); err != nil {
		log.Fatal("Вход не удался", zap.Error(err))
	}

	if err := solver.Run(ctx); err != nil {
		log.Fatal("Прогон прерван", zap.Error(err))
	}

	if repo != nil && solverCfg.RunID != nil {
		records, err := repo.ListAnswers(*solverCfg.RunID)
		if err != nil {
			log.Warn("Не удалось получить итоги прогона", zap.Error(err))
		} else {
			counts := database.StatusCounts(records)
			log.Info("Итоги прогона",
				zap.Int("answered", counts["answered"]),
				zap.Int("skipped", counts["skipped"]),
				zap.Int("failed", counts["failed"]))
		}
	}

	log.Info("Готово")
}

func recorderOrNil(repo *database.RunRepository) llm.Recorder {
	if repo == nil {
		return nil
	}
	return repo
}
