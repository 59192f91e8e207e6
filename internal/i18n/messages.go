package i18n

// Message keys for user-visible notices. The tables below are pure data;
// control flow never branches on a translated string.
const (
	MsgNothingToGoBack = "nothing_to_go_back"
	MsgQuotaExceeded   = "quota_exceeded"
	MsgDecodeError     = "decode_error"
	MsgEmptyVocab      = "empty_vocab"
	MsgNoIncorrect     = "no_incorrect"
	MsgHistoryCleared  = "history_cleared"
	MsgGradingFailed   = "grading_failed"
	MsgHistoryNotSaved = "history_not_saved"
)

var messages = map[string]map[Lang]string{
	MsgNothingToGoBack: {
		English:  "Nothing to go back to.",
		Japanese: "これ以上戻れません。",
	},
	MsgQuotaExceeded: {
		English:  "The AI service is busy right now. Please come back later.",
		Japanese: "AIサービスが混み合っています。しばらくしてからもう一度お試しください。",
	},
	MsgDecodeError: {
		English:  "Couldn't understand the AI response.",
		Japanese: "AIの応答を解釈できませんでした。",
	},
	MsgEmptyVocab: {
		English:  "Add at least one word first.",
		Japanese: "先に単語を1つ以上追加してください。",
	},
	MsgNoIncorrect: {
		English:  "No incorrect answers to retry.",
		Japanese: "やり直す誤答がありません。",
	},
	MsgHistoryCleared: {
		English:  "History cleared.",
		Japanese: "履歴を削除しました。",
	},
	MsgGradingFailed: {
		English:  "Grading failed. Please try submitting again.",
		Japanese: "採点に失敗しました。もう一度送信してください。",
	},
	MsgHistoryNotSaved: {
		English:  "Your results are shown but could not be saved to history.",
		Japanese: "結果は表示されますが、履歴に保存できませんでした。",
	},
}

// T looks up a notice in the given language, falling back to English.
func T(lang Lang, key string) string {
	if m, ok := messages[key]; ok {
		if s, ok := m[lang]; ok {
			return s
		}
		return m[English]
	}
	return key
}
