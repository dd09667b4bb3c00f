package main

import (
	"context"
	"fmt"
	"strconv"

	"devmastery/internal/domain"
)

// cmdSettings handles settings subcommands
func cmdSettings(args []string) error {
	subCmd := "show"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "show", "":
		return cmdSettingsShow()
	case "theme":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery settings theme <dark|light>")
		}
		return cmdSettingsTheme(args[1])
	case "font-size":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery settings font-size <14px|16px|18px|20px>")
		}
		return cmdSettingsFontSize(args[1])
	case "bionic-reading", "high-contrast", "dyslexia-font":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery settings %s <on|off>", subCmd)
		}
		return cmdSettingsToggle(subCmd, args[1])
	default:
		return fmt.Errorf("unknown settings command: %s (valid: show, theme, font-size, bionic-reading, high-contrast, dyslexia-font)", subCmd)
	}
}

func cmdSettingsShow() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	settings := a.service.Settings()

	fmt.Println("Settings")
	fmt.Println("========")
	fmt.Printf("Theme:           %s\n", settings.Theme)
	fmt.Printf("Font Size:       %s\n", settings.FontSize)
	fmt.Printf("Bionic Reading:  %s\n", onOff(settings.BionicReading))
	fmt.Printf("High Contrast:   %s\n", onOff(settings.HighContrast))
	fmt.Printf("Dyslexia Font:   %s\n", onOff(settings.DyslexiaFont))

	return nil
}

func cmdSettingsTheme(theme string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.SetTheme(ctx, domain.Theme(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}

	fmt.Printf("Theme set to %s\n", theme)
	return nil
}

func cmdSettingsFontSize(size string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.SetFontSize(ctx, size); err != nil {
		return fmt.Errorf("set font size: %w", err)
	}

	fmt.Printf("Font size set to %s\n", size)
	return nil
}

func cmdSettingsToggle(setting, value string) error {
	enabled, err := parseOnOff(value)
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	switch setting {
	case "bionic-reading":
		err = a.service.SetBionicReading(ctx, enabled)
	case "high-contrast":
		err = a.service.SetHighContrast(ctx, enabled)
	case "dyslexia-font":
		err = a.service.SetDyslexiaFont(ctx, enabled)
	}
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}

	fmt.Printf("%s: %s\n", setting, onOff(enabled))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("invalid value %q (use on or off)", s)
}
