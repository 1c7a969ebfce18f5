package console

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/smartcare-id/admin-console/internal/model"
)

// Run drives the interactive read-eval-print loop over the shell. It reads
// commands from in, dispatches to the shell, and prints errors instead of
// propagating them, so a failed fetch or mutation never kills the session.
// The loop exits on EOF, "exit", or context cancellation.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.Resume(ctx); err != nil {
		s.printf("warning: could not restore session: %v\n", err)
	}

	scanner := bufio.NewScanner(in)
	s.render(s.active)
	for {
		s.printf("%s> ", s.prompt())
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			s.printf("Sampai jumpa.\n")
			return nil
		}
		if !s.authenticated {
			s.dispatchAnon(ctx, cmd, args)
			continue
		}
		s.dispatch(ctx, cmd, args)
	}
}

func (s *Shell) prompt() string {
	if !s.authenticated {
		return "smartcare"
	}
	return "smartcare/" + s.active.String()
}

func (s *Shell) dispatchAnon(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		s.printf("Commands: login <email> <password>, register <email> <password> <confirm>, exit\n")
	case "login":
		if len(args) != 2 {
			s.printf("usage: login <email> <password>\n")
			return
		}
		if err := s.Login(ctx, args[0], args[1]); err != nil {
			s.printf("login failed: %v\n", err)
			return
		}
		s.render(s.active)
	case "register":
		if len(args) != 3 {
			s.printf("usage: register <email> <password> <confirm>\n")
			return
		}
		if err := s.Register(ctx, args[0], args[1], args[2]); err != nil {
			s.printf("register failed: %v\n", err)
			return
		}
		s.printf("Registered %s. Use login to continue.\n", args[0])
	default:
		s.printf("Unknown command: %s (try help)\n", cmd)
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd string, args []string) {
	var err error
	switch cmd {
	case "help":
		s.printf("Navigation: open <view>, back, views, logout, exit\n")
		s.printf("Mutations: block <id>, unblock <id>, approve <id>, reject <id>,\n")
		s.printf("  add-service <nama>;<deskripsi>;<tarif>;<kategori>, tariff <id> <tarif>,\n")
		s.printf("  complaint <id> <status>, update-admin <email> <password> <confirm>,\n")
		s.printf("  reset RESET SEMUA DATA\n")

	case "views":
		s.renderDashboard()

	case "open":
		if len(args) != 1 {
			s.printf("usage: open <view>\n")
			return
		}
		var view ViewID
		if view, err = ParseViewID(args[0]); err == nil {
			err = s.Open(ctx, view)
		}

	case "back":
		s.Back()
		s.render(s.active)

	case "block", "unblock":
		if len(args) != 1 {
			s.printf("usage: %s <id>\n", cmd)
			return
		}
		err = s.BlockPartner(ctx, args[0], cmd == "block")

	case "approve":
		if len(args) != 1 {
			s.printf("usage: approve <id>\n")
			return
		}
		err = s.ApproveCandidate(ctx, args[0])

	case "reject":
		if len(args) != 1 {
			s.printf("usage: reject <id>\n")
			return
		}
		err = s.RejectCandidate(ctx, args[0])

	case "add-service":
		err = s.addServiceCommand(ctx, strings.Join(args, " "))

	case "tariff":
		if len(args) != 2 {
			s.printf("usage: tariff <id> <tarif>\n")
			return
		}
		err = s.UpdateTariff(ctx, args[0], args[1])

	case "complaint":
		if len(args) != 2 {
			s.printf("usage: complaint <id> <status>\n")
			return
		}
		err = s.SetComplaintStatus(ctx, args[0], args[1])

	case "update-admin":
		if len(args) != 3 {
			s.printf("usage: update-admin <email> <password> <confirm>\n")
			return
		}
		err = s.UpdateAdmin(ctx, args[0], args[1], args[2])

	case "reset":
		err = s.ResetAll(ctx, strings.Join(args, " "))
		if err == nil {
			s.printf("All tables cleared.\n")
		}

	case "logout":
		if err = s.Logout(ctx); err == nil {
			s.printf("Logged out.\n")
		}

	default:
		// Bare view names work as a shortcut for open.
		var view ViewID
		if view, err = ParseViewID(cmd); err != nil {
			s.printf("Unknown command: %s (try help)\n", cmd)
			return
		}
		err = s.Open(ctx, view)
	}

	if err != nil {
		s.printf("error: %v\n", err)
	}
}

// addServiceCommand parses "nama;deskripsi;tarif;kategori" and submits it.
func (s *Shell) addServiceCommand(ctx context.Context, raw string) error {
	fields := strings.Split(raw, ";")
	if len(fields) != 4 {
		s.printf("usage: add-service <nama>;<deskripsi>;<tarif>;<kategori>\n")
		return nil
	}
	tarif, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		s.printf("tarif must be a number: %q\n", fields[2])
		return nil
	}
	layanan := model.Layanan{
		NamaLayanan: strings.TrimSpace(fields[0]),
		Deskripsi:   strings.TrimSpace(fields[1]),
		Tarif:       tarif,
		Kategori:    strings.TrimSpace(fields[3]),
	}
	if err := s.AddService(ctx, layanan); err != nil {
		return err
	}
	s.printf("Added service %s.\n", layanan.NamaLayanan)
	return nil
}
