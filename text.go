package main

import (
	"time"

	"github.com/Zachkp/portfolio-motion/motion"
)

var (
	HeroName    = "Parth Sharma"
	HeroTagline = "Noida, NCR | Chandigarh University | Software Engineer"

	// Roles cycled by the hero typewriter.
	Roles = []string{
		"Software Engineer",
		"Full Stack Developer",
		"CS Final Year Student",
		"Problem Solver",
		"Code Enthusiast",
	}

	AboutMe = `With a strong foundation in C++, Data Structures & Algorithms (DSA), and Full-Stack Development, I thrive on
	solving complex problems and building efficient, scalable solutions. My academic journey has equipped me with hands-on
	experience in both frontend and backend technologies.`

	// WhatIDo lists the about section's highlights.
	WhatIDo = []string{
		"Develop clean, optimized code with a focus on performance and usability",
		"Build full-stack web applications using modern technologies",
		"Solve algorithmic challenges to sharpen problem-solving skills",
	}

	Skills = map[string][]string{
		"Languages": {"JavaScript", "TypeScript", "Python", "C++", "C"},
		"Frontend":  {"React.js", "Next.js", "HTML5", "CSS3", "Framer Motion"},
		"Backend":   {"Node.js", "Express.js", "REST APIs", "GraphQL"},
		"Databases": {"Supabase", "MongoDB", "Firebase", "PostgreSQL"},
	}

	FloatingLabels = []string{"React", "TypeScript", "Node.js", "Python", "MongoDB", "Express"}
)

// Page sections, in scroll order.
var Sections = []string{"hero", "about", "skills", "projects", "contact"}

// pageTimeline is how each section fades, scales and drifts with scroll.
var pageTimeline = []motion.Mapping{
	{Name: "hero.opacity", Domain: [2]float64{0, 400}, Range: [2]float64{1, 0}},
	{Name: "hero.scale", Domain: [2]float64{0, 400}, Range: [2]float64{1, 0.8}},
	{Name: "hero.y", Domain: [2]float64{0, 400}, Range: [2]float64{0, -200}},

	{Name: "about.y", Domain: [2]float64{200, 800}, Range: [2]float64{100, -100}},
	{Name: "about.opacity", Domain: [2]float64{200, 600}, Range: [2]float64{0, 1}},
	{Name: "about.scale", Domain: [2]float64{200, 600}, Range: [2]float64{0.9, 1}},

	{Name: "skills.y", Domain: [2]float64{600, 1200}, Range: [2]float64{80, -80}},
	{Name: "skills.opacity", Domain: [2]float64{600, 1000}, Range: [2]float64{0, 1}},

	{Name: "projects.y", Domain: [2]float64{1000, 1600}, Range: [2]float64{80, -80}},
	{Name: "projects.opacity", Domain: [2]float64{1000, 1400}, Range: [2]float64{0, 1}},
	{Name: "projects.scale", Domain: [2]float64{1000, 1400}, Range: [2]float64{0.9, 1}},

	{Name: "contact.y", Domain: [2]float64{1400, 1800}, Range: [2]float64{80, -40}},
	{Name: "contact.opacity", Domain: [2]float64{1400, 1800}, Range: [2]float64{0, 1}},

	{Name: "background.y", Domain: [2]float64{0, 2000}, Range: [2]float64{0, -800}},
	{Name: "parallax.y", Domain: [2]float64{0, 2000}, Range: [2]float64{0, -400}},
}

// backToTopOffset is how far down the page the back-to-top button appears.
const backToTopOffset = 400

// backgroundStops tint the page as it scrolls from top to bottom.
var backgroundStops = []string{"#000000", "#1a0033", "#2d1b69", "#4c1d95", "#5b21b6", "#6d28d9"}

// floatingIcon is one drifting tech icon behind the content.
type floatingIcon struct {
	Left, Top           float64 // percent of the viewport
	X, Y, Rotate, Scale motion.Track
}

func floatingIcons() []floatingIcon {
	icons := make([]floatingIcon, 12)
	for i := range icons {
		dur := 8*time.Second + time.Duration(i)*500*time.Millisecond
		delay := time.Duration(i) * 800 * time.Millisecond
		track := func(values ...float64) motion.Track {
			return motion.Track{Values: values, Duration: dur, Delay: delay, Ease: motion.EaseInOut}
		}
		icons[i] = floatingIcon{
			Left:   10 + float64(i)*8,
			Top:    20 + float64(i)*6,
			Y:      track(0, -40, 0),
			X:      track(0, 20, 0),
			Rotate: track(0, 180, 360),
			Scale:  track(0.5, 1.2, 0.5),
		}
	}
	return icons
}

// floatingLabelTracks fade the tech name chips in and out.
func floatingLabelTracks() []motion.Track {
	tracks := make([]motion.Track, len(FloatingLabels))
	for i := range tracks {
		tracks[i] = motion.Track{
			Values:   []float64{0.2, 0.8, 0.2},
			Duration: 7 * time.Second,
			Delay:    time.Duration(i) * 1200 * time.Millisecond,
			Ease:     motion.EaseInOut,
			Repeat:   motion.RepeatReverse,
		}
	}
	return tracks
}
