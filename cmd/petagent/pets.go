package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/petstore"
	"github.com/fentz26/petstore-agent/internal/render"
)

var petsCmd = &cobra.Command{
	Use:   "pets",
	Short: "Query the pet store API directly",
}

var petsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pets",
	RunE:  runPetsList,
}

var petsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single pet by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPetsGet,
}

var petsStatusCmd = &cobra.Command{
	Use:   "status <available|pending|sold>",
	Short: "List pets by adoption status",
	Args:  cobra.ExactArgs(1),
	RunE:  runPetsStatus,
}

func init() {
	petsCmd.AddCommand(petsListCmd, petsGetCmd, petsStatusCmd)
}

func runPetsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pets, err := newAPI(cfg).ListPets(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(render.PetList(render.HeaderAllPets, pets))
	return nil
}

func runPetsGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid pet id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pet, err := newAPI(cfg).GetPet(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Println(render.PetDetail(pet))
	return nil
}

func runPetsStatus(cmd *cobra.Command, args []string) error {
	status := petstore.Status(args[0])
	if !status.Valid() {
		return fmt.Errorf("invalid status %q, must be: available, pending, or sold", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pets, err := newAPI(cfg).FindByStatus(cmd.Context(), status)
	if err != nil {
		return err
	}

	fmt.Println(render.PetList(render.StatusHeader(status), pets))
	return nil
}
