// Package cli — консольный ввод недостающих параметров прогона.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type UserInputProvider struct {
	reader *bufio.Reader
}

func NewUserInputProvider() *UserInputProvider {
	return &UserInputProvider{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Ask печатает вопрос и ждёт строку со стандартного ввода.
func (p *UserInputProvider) Ask(ctx context.Context, question string) (string, error) {
	fmt.Printf("%s ", question)

	answerChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		answer, err := p.reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		answerChan <- strings.TrimSpace(answer)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errChan:
		return "", err
	case answer := <-answerChan:
		return answer, nil
	}
}

// AskDefault повторяет Ask, но подставляет значение по умолчанию
// на пустой ввод.
func (p *UserInputProvider) AskDefault(ctx context.Context, question, defaultValue string) (string, error) {
	answer, err := p.Ask(ctx, fmt.Sprintf("%s [%s]:", question, defaultValue))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}
