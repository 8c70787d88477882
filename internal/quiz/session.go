package quiz

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Login проходит форму входа на уже открытой странице. Любая ошибка здесь
// фатальна: без сессии прогон не имеет смысла.
func (s *Solver) Login(ctx context.Context, username, password string) error {
	sel := s.cfg.Selectors
	if err := s.page.Fill(sel.LoginUsername, username); err != nil {
		return fmt.Errorf("поле логина: %w", err)
	}
	if err := s.page.Fill(sel.LoginPassword, password); err != nil {
		return fmt.Errorf("поле пароля: %w", err)
	}
	if err := s.page.Click(sel.LoginSubmit); err != nil {
		return fmt.Errorf("кнопка входа: %w", err)
	}

	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("загрузка после входа: %w", err)
	}

	return nil
}
