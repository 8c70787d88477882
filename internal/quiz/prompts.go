package quiz

import "fmt"

// Системные промпты для DeepSeek. Страница и вопросы китайские, промпты тоже.

func choiceSystemPrompt(language string) string {
	return fmt.Sprintf("请完成以下%s选择题，直接输出选项大写字母，不要使用代码块。", language)
}

func fillSystemPrompt(language string) string {
	return fmt.Sprintf("请完成以下%s填空题，直接输出填入内容，多个空用 | 分隔，不要使用代码块。", language)
}

func codeSystemPrompt(language string) string {
	return "你现在在一个在线判题系统中作答编程题。\n" +
		"我会给你：\n" +
		"1. 题目描述（段落）；\n" +
		"2. 系统给出的起始代码（如果有）；\n\n" +
		fmt.Sprintf("请只使用%s，在不破坏题目已有代码框架的前提下（如果有），写出或补全代码，使之通过所有测试。\n", language) +
		"要求：\n" +
		"1. 直接输出最终完整代码文本，如果要求在前置代码基础上添加，则只输出需要添加的内容；\n" +
		"2. 不要使用 Markdown 代码块标记；\n" +
		"3. 不要输出任何解释性文字；\n" +
		"4. 不要添加注释。"
}

// Заголовки секций в промпте кодового вопроса.
const (
	codePromptFaceHeader     = "【题目描述】"
	codePromptTemplateHeader = "【系统给出的起始代码（不要随意删除，通常是 main 函数等框架）】"
)
