package content

import (
	"fmt"
	"strings"
)

func buildChaptersPrompt(topic, userDetails string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert compassionate teacher whose goal is to teach %s to a student as a game.\n", topic)
	b.WriteString(`You have divided the topic into some small chapters.
Please make it such that each chapter is engaging and fun for the students.
Each chapter is going to be a level in the game, so make sure that the students learn something new in each level and are excited to move to the next level.
Levels should be progressive and build on top of each other.
The details of the student are as follows:
`)
	b.WriteString(userDetails)
	b.WriteString("\nPlease tailor the chapters according to the student's details.\n")

	return b.String()
}

func buildPersonasPrompt(topic, userDetails string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are creating teacher personas for teachers who are going to teach %s to a student.\n", topic)
	b.WriteString(`Each persona should be engaging and fun for the student, with a unique personality, teaching style, and signature trait.
The details of the student are as follows:
`)
	b.WriteString(userDetails)
	b.WriteString("\nPlease tailor the teacher personas according to the student's details.\n")

	return b.String()
}

func buildQuestPrompt(personaDescription, topic, chapterTitle string, level int, userDetails string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s.\n", personaDescription)
	fmt.Fprintf(&b, "You are creating a quest for the student to learn the %s chapter of %s.\n", chapterTitle, topic)
	b.WriteString("The quest needs to be engaging and fun for the student.\n")
	fmt.Fprintf(&b, "The student must obtain at least %d points to complete the quest.\n", RequiredPoints(level))
	fmt.Fprintf(&b, "The student can obtain a maximum of %d points.\n", MaxPoints(level))
	b.WriteString(`Please prepare questions for the quest. Each question should be related to the topic, and there should be a mix of easy, medium, and hard questions.
There should be enough and more questions to help the student obtain the maximum points.
Please tailor the questions according to the student's details:
`)
	b.WriteString(userDetails)
	b.WriteString("\n")

	return b.String()
}
