package ui

import (
	"fmt"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/model"
)

// SkillsSection shows the skill progress bars. The bars stay empty until
// Animate fires, then each fills to its percentage after a small random
// stagger so the fills do not start in lockstep.
type SkillsSection struct {
	widget.BaseWidget

	skills       []model.Skill
	bars         []*widget.ProgressBar
	reduceMotion bool
}

// NewSkillsSection creates the skills section with empty bars
func NewSkillsSection(skills []model.Skill, reduceMotion bool) *SkillsSection {
	ss := &SkillsSection{skills: skills, reduceMotion: reduceMotion}
	ss.ExtendBaseWidget(ss)

	for range skills {
		bar := widget.NewProgressBar()
		bar.Max = 100
		bar.TextFormatter = func() string {
			return fmt.Sprintf("%d%%", int(bar.Value))
		}
		ss.bars = append(ss.bars, bar)
	}
	return ss
}

// CreateRenderer builds the labeled bar rows
func (ss *SkillsSection) CreateRenderer() fyne.WidgetRenderer {
	rows := make([]fyne.CanvasObject, 0, len(ss.skills))
	for i, skill := range ss.skills {
		name := widget.NewLabel(skill.Name)
		rows = append(rows, container.NewVBox(name, ss.bars[i]))
	}
	return widget.NewSimpleRenderer(container.NewVBox(rows...))
}

// Animate fills every bar to its skill percentage. With reduce motion enabled
// the final values are applied immediately.
func (ss *SkillsSection) Animate() {
	for i, skill := range ss.skills {
		bar := ss.bars[i]
		target := float64(skill.Percent)

		if ss.reduceMotion {
			bar.SetValue(target)
			continue
		}

		delay := time.Duration(rand.Int63n(int64(SkillFillJitter)))
		go func() {
			time.Sleep(delay)
			fyne.Do(func() {
				fillBar(bar, target)
			})
		}()
	}
}

// fillBar animates a progress bar from empty to target
func fillBar(bar *widget.ProgressBar, target float64) {
	animation := fyne.NewAnimation(SkillFillDuration, func(progress float32) {
		bar.SetValue(target * float64(progress))
	})
	animation.Curve = fyne.AnimationEaseOut
	animation.Start()
}
