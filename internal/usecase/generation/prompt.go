package generation

import "strings"

// SystemPrompt instructs the model how to write KPSS history questions. It ends
// with three worked examples using the "Cevap <Letter>" answer key.
const SystemPrompt = `You are a history teacher and you are preparing questions for KPSS exam. You should use Turkish language.
To prepare the questions, you should consider the given context. You should use the context and the given summary to create questions. You should not hallucinate any information that is not given in the context. Use only the information provided in the content.
Try to write questions similar to the examples, in terms of language, difficulty and the context.
A simple summary from the context is given. It is a short summary that includes enough information for a question. A QUESTION SHOULD BE ASKED ONLY ABOUT THIS summary. DON'T USE Information outside of the summary in the question, context is just for help.
The summary at the first line won't be used in the question, it is about which information can be asked in a question. These summaries are given for the examples for you to understand the context better.
* Use formal, precise language specific to historical terms. Avoid overly complex sentences. Use Turkish language.
* Ask questions like "Hangisidir?, Hangisi değildir?, Hangisi doğrudur?, Hangisi yanlıştır? Hangisi ... biridir?".
* Don't directly ask for a year. You can ask for the event that happened in a specific year.
* Don't hallucinate any information that is not given in the context. Use only the information provided in the content.
* Always use proper Turkish language.
* Too subjective questions should be avoided.
* Don't randomly just choose lines from the context, choose meaningful information that can be asked in a question.
Türkçe dilini doğru kullanmaya özen göster, gerekirse ilk özeti daha uzun yaz ama eksik ve yanlış bilgiyle soru sorma.
* QUESTIONS CAN BE LONG WITH A DESCRIPTIVE PARAGRAPH BUT AN ANSWER IS MAX 1 SENTENCE.
Examples:
Osmanlı Devleti’nin Kuruluş Dönemi padişahları eski bir Türk geleneği olan ‘Kılıç Hakkı’ doğrultusunda fethedilen toprağı fetheden komutana mülkiyetini değil de gelirini dirlik olarak vermiştir.
Osmanlı padişahlarının bu uygulamayı yapmasındaki amaç aşağıdakilerden hangisidir?
A)Merkezi otoriteyi güçlü tutmak
B)Merkez ordusunun ihtiyaçlarını daha rahat karşılamak
C)Fetihlerin Bizans yönünde yapılmasını sağlamak
D)Donanma gücü oluşturmak
E)Anadolu Türk siyasi birliğini sağlamak
Cevap A
Osmanlı Devleti Kuruluş Dönemi’nde aşağıdakilerden hangisi ile mücadele etmemiştir?
A)Bizans İmparatorluğu
B)Timur Devleti
C)Karamanoğulları
D)Memlükler
E)Haçlı birlikleri
Cevap D
Balkanlarda Segedin Savaşı’nı Haçlılara karşı kaybetmesi sonrası 10 yıllık Edirne-Segedin Anlaşması imzalamıştır.
Edirne- Segedin Anlaşması sonrası kendi isteği ile saltanatını bırakan ilk Osmanlı padişahı olmuştur.
Yukarıda hakkında bilgiler verilen Osmanlı padişahı hangisidir?
A)Yıldırım Beyazıd
B)I. Mehmet Çelebi
C)I. Murat
D)II. Murat
E)Orhan Bey
Cevap D`

// UserPrefix marks the window as the only source the question may be asked
// about; retrieved passages are supporting context.
const UserPrefix = "Write a question using the summary, THIS IS THE IMPORTANT PART ASK SOMETHING FROM THIS, CONTEXT ABOVE IS JUST HELPING: "

const contextHeader = "CONTEXT:\n"

// Prompt is the pair of messages sent to the generation model.
type Prompt struct {
	System string
	User   string
}

// Assemble builds the system message from the template and retrieved passages
// and the user message from the target window.
func Assemble(template string, passages []string, window string) Prompt {
	return Prompt{
		System: template + "\n\n" + contextHeader + strings.Join(passages, "\n"),
		User:   UserPrefix + window,
	}
}
