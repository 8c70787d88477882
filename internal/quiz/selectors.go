package quiz

// Selectors задаёт DOM-контракт страницы с вопросами. Значение неизменяемое и
// передаётся компонентам при создании, глобального состояния нет.
type Selectors struct {
	// Общая область вопроса
	QuestionItem  string
	QuestionFace  string
	QuestionFaces string

	// Одиночный выбор / суждение
	AnswerLabels       string
	OptionInputByValue string // шаблон с %s вместо буквы варианта

	// Заполнение пропусков
	BlankInputs string

	// Кандидаты редакторов кодового вопроса (TinyMCE / Monaco / textarea / contenteditable)
	AnyEditorCandidates string
	DesignTextarea      string
	ContentEditableID   string
	ContentEditableAny  string
	EditorFrames        []string

	// Стартовый код, который даёт система
	CodeTemplatePre string

	// Сохранение и переход
	SaveButton string
	NextButton string

	// Вход
	LoginUsername string
	LoginPassword string
	LoginSubmit   string
}

func DefaultSelectors() Selectors {
	return Selectors{
		QuestionItem:  "#c-grid-ajax .question-item",
		QuestionFace:  "#c-grid-ajax .question-item .question-face",
		QuestionFaces: ".question-face",

		AnswerLabels:       ".question-answer label",
		OptionInputByValue: `#c-grid-ajax .question-item .question-answer input.question-option-input[value="%s"]`,

		BlankInputs: "#c-grid-ajax .question-item .question-answer .question-blank-input",

		AnyEditorCandidates: "#question_content, textarea.question-design-input, " +
			"iframe#editorContainer, iframe.code-editor, iframe.monaco-editor, " +
			"[contenteditable='true']",
		DesignTextarea:     "textarea.question-design-input",
		ContentEditableID:  "#question_content",
		ContentEditableAny: "[contenteditable='true']",
		EditorFrames: []string{
			"iframe#editorContainer",
			"iframe.code-editor",
			"iframe.monaco-editor",
		},

		CodeTemplatePre: ".question-answer pre, pre[data-lang]",

		SaveButton: "#cmd_saveQuestion",
		NextButton: "#cmd_next",

		LoginUsername: "#UserName",
		LoginPassword: "#Password",
		LoginSubmit:   "button[type='submit']",
	}
}
