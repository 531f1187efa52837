package evaluator

import (
	"fmt"

	"horror-oracle/internal/domain"
)

// fallbackVerdict is the one-line judgment for each feedback tone.
func fallbackVerdict(tone string, score, total int) string {
	switch tone {
	case domain.ToneCreepy:
		return fmt.Sprintf("Your answers echo through empty corridors... %d doors opened.", score)
	case domain.ToneMocking:
		return fmt.Sprintf("How... quaint. You stumbled through %d correct answers.", score)
	case domain.ToneAncient:
		return fmt.Sprintf("Thy knowledge hath been weighed: %d truths revealed.", score)
	case domain.ToneWhispered:
		return fmt.Sprintf("Shh... you got %d right... don't tell the others...", score)
	case domain.ToneGrim:
		return fmt.Sprintf("Your score: %d/%d. The trial shows no mercy.", score, total)
	case domain.TonePlayful:
		return fmt.Sprintf("Ooh, %d out of %d! Let's see what prizes you've won...", score, total)
	default:
		return fmt.Sprintf("Score: %d/%d", score, total)
	}
}

// fallbackReaction voices the Oracle's longer reaction. Three bands per
// tone: perfect, at least 70 percent, and everything below.
func fallbackReaction(tone string, score, total int, percentage float64) string {
	wrong := total - score
	switch tone {
	case domain.ToneCreepy:
		switch {
		case percentage == 100:
			return fmt.Sprintf("The Oracle's gaze lingers on you. Every answer... perfect. The shadows whisper your name now. You belong here, in the darkness. %d questions, %d truths. No light escapes.", score, score)
		case percentage >= 70:
			return fmt.Sprintf("Cold fingers trace your spine. You felt the correct answers, didn't you? %d emerged from the void. But %d remain... buried. Can you hear them screaming?", score, wrong)
		default:
			return fmt.Sprintf("Something moves in the corner of your vision. %d answers clawed their way to light. %d are still trapped in there... with you. The walls are listening, and they remember everything.", score, wrong)
		}
	case domain.ToneMocking:
		switch {
		case percentage == 100:
			return fmt.Sprintf("Well, well. Color me impressed. %d correct. Every. Single. One. Perhaps you're not as dull as you appeared. The Oracle grants you passage... this time.", score)
		case percentage >= 70:
			return fmt.Sprintf("The Oracle chuckles from the void. %d out of %d. Should I slow down for you? The Masters of Horror would be... mildly disappointed.", score, total)
		default:
			return fmt.Sprintf("Oh dear. Oh my. %d correct? Did you even watch these films, or just read the back of the DVD case? Pathetic. Come back when you've done your homework.", score)
		}
	case domain.ToneAncient:
		switch {
		case percentage == 100:
			return fmt.Sprintf("From the depths of aeons past, the Oracle speaketh: PERFECTION. %d answers rendered unto truth. Thou art worthy of the ancient knowledge. The elders bow before thee.", score)
		case percentage >= 70:
			return fmt.Sprintf("Thy knowledge hath been measured: %d truths revealed of %d trials. The ancient ones nod in recognition. Yet %d remain shrouded in shadow's embrace.", score, total, wrong)
		default:
			return fmt.Sprintf("The scales of eternity weigh thy wisdom and find it wanting. %d answers correct, %d lost to ignorance. The ancients turn their faces away.", score, wrong)
		}
	case domain.ToneWhispered:
		switch {
		case percentage == 100:
			return fmt.Sprintf("The Oracle leans close, breath cold against your ear. Perfect... %d out of %d... You know things you shouldn't. Where did you learn these secrets? Who told you?", score, score)
		case percentage >= 70:
			return fmt.Sprintf("Listen... closer... %d correct. Not bad. Not great. The questions you missed? They were tests within tests. But we'll keep that between us.", score)
		default:
			return fmt.Sprintf("Shh... don't be embarrassed about the %d you missed. Everyone fails sometimes. %d right means you tried. That's... something. Isn't it?", wrong, score)
		}
	case domain.ToneGrim:
		switch {
		case percentage == 100:
			return fmt.Sprintf("Perfect execution. %d correct answers. %d failures. Zero margin for error. The darkness acknowledges your mastery.", score, wrong)
		case percentage >= 70:
			return fmt.Sprintf("The Oracle delivers judgment: %d correct. %d failures. There is no consolation in horror. You performed adequately. Nothing more.", score, wrong)
		default:
			return fmt.Sprintf("Insufficient. %d correct answers out of %d. %d failures. There are no participation trophies in the darkness. You either know or you don't.", score, total, wrong)
		}
	case domain.TonePlayful:
		switch {
		case percentage == 100:
			return fmt.Sprintf("The Oracle claps with glee! Perfect! PERFECT! %d out of %d! You magnificent creature! Every answer a bullseye! You've won the grand prize: my RESPECT. Rare indeed!", score, score)
		case percentage >= 70:
			return fmt.Sprintf("Ooh, %d correct! Delicious! You got some wrong though... tsk tsk. But that's what makes it FUN! Every wrong answer is a little death. You're playing well, little mortal!", score)
		default:
			return fmt.Sprintf("The Oracle giggles maniacally! %d right, %d wrong! What a delightful disaster! You're drowning but still fighting! I LOVE it! Want to try again?", score, wrong)
		}
	default:
		switch {
		case percentage == 100:
			return fmt.Sprintf("Perfect score: %d/%d. The Oracle acknowledges your mastery.", score, total)
		case percentage >= 70:
			return fmt.Sprintf("Strong performance: %d/%d. The Oracle watches with interest.", score, total)
		default:
			return fmt.Sprintf("Score: %d/%d. There is room for improvement.", score, total)
		}
	}
}
