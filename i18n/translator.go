package i18n

// Translator retrieves localized messages for ValidationError codes.
// data provides optional metadata to embed in the message (for example,
// "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := ""
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "invalid_enum":
			msg = "許可された値ではありません"
		case "all_of":
			msg = "allOf のすべてのスキーマを満たしていません"
		case "any_of":
			msg = "anyOf のいずれのスキーマも満たしていません"
		case "one_of":
			msg = "oneOf のちょうど一つのスキーマを満たしていません"
		case "not":
			msg = "not のスキーマに一致しています"
		case "too_short":
			msg = "短すぎます"
		case "too_long":
			msg = "長すぎます"
		case "pattern":
			msg = "パターンに一致しません"
		case "too_small":
			msg = "小さすぎます"
		case "too_big":
			msg = "大きすぎます"
		case "not_multiple":
			msg = "倍数ではありません"
		case "too_few_items":
			msg = "要素が少なすぎます"
		case "too_many_items":
			msg = "要素が多すぎます"
		case "duplicate_item":
			msg = "要素が重複しています"
		case "additional_items":
			msg = "追加の要素は許可されていません"
		case "too_few_properties":
			msg = "プロパティが少なすぎます"
		case "too_many_properties":
			msg = "プロパティが多すぎます"
		case "required":
			msg = "必須プロパティが不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "dependency":
			msg = "依存プロパティが不足しています"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "invalid_enum":
			msg = "value not allowed by enum"
		case "all_of":
			msg = "does not satisfy all schemas in allOf"
		case "any_of":
			msg = "does not satisfy any schema in anyOf"
		case "one_of":
			msg = "does not satisfy exactly one schema in oneOf"
		case "not":
			msg = "matches forbidden schema in not"
		case "too_short":
			msg = "too short"
		case "too_long":
			msg = "too long"
		case "pattern":
			msg = "pattern mismatch"
		case "too_small":
			msg = "too small"
		case "too_big":
			msg = "too big"
		case "not_multiple":
			msg = "not a multiple"
		case "too_few_items":
			msg = "too few items"
		case "too_many_items":
			msg = "too many items"
		case "duplicate_item":
			msg = "items are not unique"
		case "additional_items":
			msg = "additional items not allowed"
		case "too_few_properties":
			msg = "too few properties"
		case "too_many_properties":
			msg = "too many properties"
		case "required":
			msg = "required property missing"
		case "unknown_key":
			msg = "unknown key"
		case "dependency":
			msg = "dependent property missing"
		}
	}
	if msg == "" {
		return code
	}
	if key, ok := data["key"]; ok && key != "" {
		return msg + ": " + key
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
